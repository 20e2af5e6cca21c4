package document

import (
	"time"

	"github.com/rafaelleal24/stock-ledger/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StockHistoryDocument rows are append-only; they are only ever written
// inside the same transaction as the stock mutation they record.
type StockHistoryDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ProductID  primitive.ObjectID `bson:"product_id"`
	SKU        string             `bson:"sku"`
	ChangeType string             `bson:"change_type"`
	Delta      int                `bson:"delta"`
	Reason     string             `bson:"reason,omitempty"`
	NewStock   int                `bson:"new_stock"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (doc StockHistoryDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *StockHistoryDocument) ToDomain() *domain.StockChange {
	return &domain.StockChange{
		ID:         domain.ID(doc.ID.Hex()),
		ProductID:  domain.ID(doc.ProductID.Hex()),
		SKU:        doc.SKU,
		ChangeType: domain.ChangeType(doc.ChangeType),
		Delta:      doc.Delta,
		Reason:     doc.Reason,
		NewStock:   doc.NewStock,
		CreatedAt:  doc.CreatedAt,
	}
}
