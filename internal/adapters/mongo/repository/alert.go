package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rafaelleal24/stock-ledger/internal/adapters/mongo/document"
	"github.com/rafaelleal24/stock-ledger/internal/adapters/outbox"
	"github.com/rafaelleal24/stock-ledger/internal/core/domain"
	"github.com/rafaelleal24/stock-ledger/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AlertRepository struct {
	collection *mongo.Collection
	outbox     outbox.Repository
	txManager  port.TransactionManager
}

func NewAlertRepository(db *mongo.Database, outbox outbox.Repository, txManager port.TransactionManager) port.AlertPort {
	return &AlertRepository{
		collection: db.Collection("stock_alerts"),
		outbox:     outbox,
		txManager:  txManager,
	}
}

// Record stores the alert and enqueues its stock.low event in one
// transaction. Callers treat Record as fire-and-forget: the ledger mutation
// that triggered the alert has already committed by the time this runs.
func (r *AlertRepository) Record(ctx context.Context, alert *domain.LowStockAlert) error {
	objectID, err := primitive.ObjectIDFromHex(string(alert.ProductID))
	if err != nil {
		return parseError(err)
	}

	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}

	doc := document.StockAlertDocument{
		ProductID: objectID,
		SKU:       alert.SKU,
		Stock:     alert.Stock,
		Threshold: alert.Threshold,
		CreatedAt: alert.CreatedAt,
	}

	event := domain.NewLowStockEvent(alert.ProductID, alert.SKU, alert.Stock, alert.Threshold, alert.CreatedAt)
	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		inserted, err := r.collection.InsertOne(txCtx, doc)
		if err != nil {
			return parseError(err)
		}
		alert.ID = domain.ID(inserted.InsertedID.(primitive.ObjectID).Hex())

		entry := outbox.Entry{
			EventName:  event.GetName(),
			EntityName: event.GetEntityName(),
			EventData:  eventData,
		}
		return r.outbox.Insert(txCtx, entry)
	})
}

func (r *AlertRepository) ListByProductID(ctx context.Context, productID domain.ID) ([]*domain.LowStockAlert, error) {
	objectID, err := primitive.ObjectIDFromHex(string(productID))
	if err != nil {
		return nil, parseError(err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"product_id": objectID}, opts)
	if err != nil {
		return nil, parseError(err)
	}
	defer cursor.Close(ctx)

	var docs []document.StockAlertDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, parseError(err)
	}

	alerts := make([]*domain.LowStockAlert, len(docs))
	for i := range docs {
		alerts[i] = docs[i].ToDomain()
	}

	return alerts, nil
}
