package service

import (
	"context"
	"time"

	"github.com/rafaelleal24/stock-ledger/internal/core/domain"
	"github.com/rafaelleal24/stock-ledger/internal/core/logger"
	"github.com/rafaelleal24/stock-ledger/internal/core/port"
	"github.com/rafaelleal24/stock-ledger/internal/core/serviceerrors"
)

// LedgerService exposes the public ledger operations. All stock mutations
// funnel through LedgerPort.ApplyStockChange; nothing else writes to the
// products or stock_history collections.
//
// Neither Purchase nor Restock deduplicates: two purchases of the same
// quantity are two separate deductions. Callers that need exactly-once
// semantics have to handle that at their own boundary.
type LedgerService struct {
	ledgerRepository port.LedgerPort
	productService   *ProductService
	alertRepository  port.AlertPort
	threshold        int
}

func NewLedgerService(
	ledgerRepository port.LedgerPort,
	productService *ProductService,
	alertRepository port.AlertPort,
	threshold int,
) *LedgerService {
	return &LedgerService{
		ledgerRepository: ledgerRepository,
		productService:   productService,
		alertRepository:  alertRepository,
		threshold:        threshold,
	}
}

// Purchase deducts quantity units of stock. It fails with a Conflict error
// when the remaining stock cannot absorb the deduction, leaving stock and
// history untouched. On success the low-stock rule is evaluated against the
// post-mutation stock value.
func (s *LedgerService) Purchase(ctx context.Context, productID domain.ID, quantity int) (*domain.StockChange, error) {
	if quantity <= 0 {
		return nil, serviceerrors.NewInvalidRequestError("quantity must be a positive integer")
	}

	change, err := s.ledgerRepository.ApplyStockChange(ctx, productID, -quantity, domain.ChangePurchase, "")
	if err != nil {
		return nil, err
	}

	s.productService.Evict(ctx, productID)

	logger.Info(ctx, "Stock deducted", map[string]any{
		"product_id": productID,
		"sku":        change.SKU,
		"quantity":   quantity,
		"new_stock":  change.NewStock,
	})

	s.evaluateLowStock(ctx, change)

	return change, nil
}

// Restock adds quantity units of stock. There is no upper bound: restocking
// an existing product always succeeds. Restocks never trigger low-stock
// alerts; reason is an optional caller-supplied label (e.g. "cancelled",
// "returned") kept on the history entry.
func (s *LedgerService) Restock(ctx context.Context, productID domain.ID, quantity int, reason string) (*domain.StockChange, error) {
	if quantity <= 0 {
		return nil, serviceerrors.NewInvalidRequestError("quantity must be a positive integer")
	}

	change, err := s.ledgerRepository.ApplyStockChange(ctx, productID, quantity, domain.ChangeRestock, reason)
	if err != nil {
		return nil, err
	}

	s.productService.Evict(ctx, productID)

	logger.Info(ctx, "Stock restored", map[string]any{
		"product_id": productID,
		"sku":        change.SKU,
		"quantity":   quantity,
		"new_stock":  change.NewStock,
		"reason":     reason,
	})

	return change, nil
}

func (s *LedgerService) History(ctx context.Context, productID domain.ID) ([]*domain.StockChange, error) {
	return s.ledgerRepository.HistoryByProductID(ctx, productID)
}

// evaluateLowStock fires whenever the post-purchase stock is at or below the
// threshold, not only on the crossing purchase: dropping from 5 to 4 alerts,
// and the next purchase down to 3 alerts again. Alert delivery is
// fire-and-forget; a failure here never surfaces to the purchase caller.
func (s *LedgerService) evaluateLowStock(ctx context.Context, change *domain.StockChange) {
	if change.NewStock > s.threshold {
		return
	}

	alert := &domain.LowStockAlert{
		ProductID: change.ProductID,
		SKU:       change.SKU,
		Stock:     change.NewStock,
		Threshold: s.threshold,
		CreatedAt: time.Now(),
	}

	if err := s.alertRepository.Record(ctx, alert); err != nil {
		logger.Error(ctx, "alert: record failed", err, map[string]any{
			"product_id": change.ProductID,
			"sku":        change.SKU,
			"stock":      change.NewStock,
			"threshold":  s.threshold,
		})
		return
	}

	logger.Warn(ctx, "Low stock alert", map[string]any{
		"product_id": change.ProductID,
		"sku":        change.SKU,
		"stock":      change.NewStock,
		"threshold":  s.threshold,
	})
}

func (s *LedgerService) ListAlerts(ctx context.Context, productID domain.ID) ([]*domain.LowStockAlert, error) {
	return s.alertRepository.ListByProductID(ctx, productID)
}
