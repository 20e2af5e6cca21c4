package document

import (
	"time"

	"github.com/rafaelleal24/stock-ledger/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StockAlertDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID primitive.ObjectID `bson:"product_id"`
	SKU       string             `bson:"sku"`
	Stock     int                `bson:"stock"`
	Threshold int                `bson:"threshold"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (doc StockAlertDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *StockAlertDocument) ToDomain() *domain.LowStockAlert {
	return &domain.LowStockAlert{
		ID:        domain.ID(doc.ID.Hex()),
		ProductID: domain.ID(doc.ProductID.Hex()),
		SKU:       doc.SKU,
		Stock:     doc.Stock,
		Threshold: doc.Threshold,
		CreatedAt: doc.CreatedAt,
	}
}
