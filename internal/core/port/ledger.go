package port

import (
	"context"

	"github.com/rafaelleal24/stock-ledger/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// LedgerPort is the sole mutation authority over product stock. The store
// applies the delta and appends the matching history entry as one atomic
// unit: either both are committed or neither is. A negative delta that would
// drive stock below zero is rejected with a Conflict service error and
// leaves no trace in either collection.
type LedgerPort interface {
	ApplyStockChange(ctx context.Context, productID domain.ID, delta int, changeType domain.ChangeType, reason string) (*domain.StockChange, error)
	HistoryByProductID(ctx context.Context, productID domain.ID) ([]*domain.StockChange, error)
}
