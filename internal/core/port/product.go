package port

import (
	"context"

	"github.com/rafaelleal24/stock-ledger/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductPort interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
	SearchSKUs(ctx context.Context, query string, limit int) ([]string, error)
}
