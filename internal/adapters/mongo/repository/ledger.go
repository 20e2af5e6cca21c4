package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rafaelleal24/stock-ledger/internal/adapters/mongo/document"
	"github.com/rafaelleal24/stock-ledger/internal/adapters/outbox"
	"github.com/rafaelleal24/stock-ledger/internal/core/domain"
	"github.com/rafaelleal24/stock-ledger/internal/core/port"
	"github.com/rafaelleal24/stock-ledger/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LedgerRepository implements the atomic update protocol over the products
// and stock_history collections. The guard and the mutation are a single
// conditional FindOneAndUpdate, never a read followed by a write, so racing
// purchases can never both be computed from the same stale stock value.
type LedgerRepository struct {
	products  *mongo.Collection
	history   *mongo.Collection
	outbox    outbox.Repository
	txManager port.TransactionManager
}

func NewLedgerRepository(db *mongo.Database, outbox outbox.Repository, txManager port.TransactionManager) port.LedgerPort {
	return &LedgerRepository{
		products:  db.Collection("products"),
		history:   db.Collection("stock_history"),
		outbox:    outbox,
		txManager: txManager,
	}
}

// ApplyStockChange applies delta to the product's stock and appends the
// matching history entry in one transaction. For negative deltas the update
// filter requires stock >= -delta, so an overselling purchase matches no
// document and commits nothing; a missing match is then disambiguated into
// NotFound or Conflict with a lookup inside the same transaction.
func (r *LedgerRepository) ApplyStockChange(ctx context.Context, productID domain.ID, delta int, changeType domain.ChangeType, reason string) (*domain.StockChange, error) {
	objectID, err := primitive.ObjectIDFromHex(string(productID))
	if err != nil {
		return nil, parseError(err)
	}
	if delta == 0 {
		return nil, serviceerrors.NewInvalidRequestError("delta must be non-zero")
	}
	if !changeType.IsValid() {
		return nil, serviceerrors.NewInvalidRequestError("invalid change type")
	}

	filter := bson.M{"_id": objectID}
	if delta < 0 {
		filter["stock"] = bson.M{"$gte": -delta}
	}

	var change *domain.StockChange
	err = r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		now := time.Now()

		var updated document.ProductDocument
		err := r.products.FindOneAndUpdate(txCtx,
			filter,
			bson.M{
				"$inc": bson.M{"stock": delta},
				"$set": bson.M{"updated_at": now},
			},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return r.classifyNoMatch(txCtx, objectID, productID, delta)
			}
			return parseError(err)
		}

		historyDoc := document.StockHistoryDocument{
			ProductID:  objectID,
			SKU:        updated.SKU,
			ChangeType: string(changeType),
			Delta:      delta,
			Reason:     reason,
			NewStock:   updated.Stock,
			CreatedAt:  now,
		}
		inserted, err := r.history.InsertOne(txCtx, historyDoc)
		if err != nil {
			return parseError(err)
		}

		change = &domain.StockChange{
			ID:         domain.ID(inserted.InsertedID.(primitive.ObjectID).Hex()),
			ProductID:  productID,
			SKU:        updated.SKU,
			ChangeType: changeType,
			Delta:      delta,
			Reason:     reason,
			NewStock:   updated.Stock,
			CreatedAt:  now,
		}

		event := domain.NewStockChangedEvent(change)
		eventData, err := json.Marshal(event)
		if err != nil {
			return err
		}
		entry := outbox.Entry{
			EventName:  event.GetName(),
			EntityName: event.GetEntityName(),
			EventData:  eventData,
		}
		return r.outbox.Insert(txCtx, entry)
	})
	if err != nil {
		return nil, err
	}

	return change, nil
}

// classifyNoMatch distinguishes an unknown product from an insufficient-stock
// rejection after the conditional update matched nothing. Runs inside the
// protocol's transaction so the answer is consistent with the failed update.
func (r *LedgerRepository) classifyNoMatch(ctx context.Context, objectID primitive.ObjectID, productID domain.ID, delta int) error {
	if delta > 0 {
		return serviceerrors.NewNotFoundError("entity not found")
	}

	count, err := r.products.CountDocuments(ctx, bson.M{"_id": objectID})
	if err != nil {
		return parseError(err)
	}
	if count == 0 {
		return serviceerrors.NewNotFoundError("entity not found")
	}
	return serviceerrors.NewConflictError(fmt.Sprintf("insufficient stock for product %s", productID))
}

func (r *LedgerRepository) HistoryByProductID(ctx context.Context, productID domain.ID) ([]*domain.StockChange, error) {
	objectID, err := primitive.ObjectIDFromHex(string(productID))
	if err != nil {
		return nil, parseError(err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.history.Find(ctx, bson.M{"product_id": objectID}, opts)
	if err != nil {
		return nil, parseError(err)
	}
	defer cursor.Close(ctx)

	var docs []document.StockHistoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, parseError(err)
	}

	changes := make([]*domain.StockChange, len(docs))
	for i := range docs {
		changes[i] = docs[i].ToDomain()
	}

	return changes, nil
}
