package port

import (
	"context"

	"github.com/rafaelleal24/stock-ledger/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type AlertPort interface {
	Record(ctx context.Context, alert *domain.LowStockAlert) error
	ListByProductID(ctx context.Context, productID domain.ID) ([]*domain.LowStockAlert, error)
}
