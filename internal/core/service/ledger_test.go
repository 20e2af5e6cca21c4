package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rafaelleal24/stock-ledger/internal/core/domain"
	"github.com/rafaelleal24/stock-ledger/internal/core/port/mock"
	"github.com/rafaelleal24/stock-ledger/internal/core/serviceerrors"
	"go.uber.org/mock/gomock"
)

const testThreshold = 5

type ledgerMocks struct {
	ledgerRepo   *mock.MockLedgerPort
	productRepo  *mock.MockProductPort
	productCache *mock.MockCachePort[domain.Product]
	alertRepo    *mock.MockAlertPort
}

func setupLedgerService(t *testing.T) (*LedgerService, *ledgerMocks) {
	ctrl := gomock.NewController(t)

	ledgerRepo := mock.NewMockLedgerPort(ctrl)
	productRepo := mock.NewMockProductPort(ctrl)
	productCache := mock.NewMockCachePort[domain.Product](ctrl)
	alertRepo := mock.NewMockAlertPort(ctrl)

	productSvc := NewProductService(productRepo, productCache)
	svc := NewLedgerService(ledgerRepo, productSvc, alertRepo, testThreshold)

	return svc, &ledgerMocks{
		ledgerRepo:   ledgerRepo,
		productRepo:  productRepo,
		productCache: productCache,
		alertRepo:    alertRepo,
	}
}

func TestLedgerService_Purchase(t *testing.T) {
	productID := domain.ID("aabbccddee112233aabbccdd")

	t.Run("delegates negative delta and returns new stock", func(t *testing.T) {
		svc, m := setupLedgerService(t)

		m.ledgerRepo.EXPECT().
			ApplyStockChange(gomock.Any(), productID, -2, domain.ChangePurchase, "").
			Return(&domain.StockChange{
				ProductID:  productID,
				SKU:        "SKU-001",
				ChangeType: domain.ChangePurchase,
				Delta:      -2,
				NewStock:   8,
			}, nil)
		m.productCache.EXPECT().Del(gomock.Any(), gomock.Any()).Return(nil)

		change, err := svc.Purchase(context.Background(), productID, 2)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if change.NewStock != 8 {
			t.Fatalf("expected new stock 8, got %d", change.NewStock)
		}
		if change.Delta != -2 {
			t.Fatalf("expected delta -2, got %d", change.Delta)
		}
	})

	t.Run("rejects non-positive quantity before store access", func(t *testing.T) {
		for _, qty := range []int{0, -1, -10} {
			svc, _ := setupLedgerService(t)

			change, err := svc.Purchase(context.Background(), productID, qty)
			if change != nil {
				t.Fatalf("expected nil change for quantity %d", qty)
			}
			if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
				t.Fatalf("expected invalid request error for quantity %d, got %v", qty, err)
			}
		}
	})

	t.Run("conflict passes through with no side effects", func(t *testing.T) {
		svc, m := setupLedgerService(t)

		m.ledgerRepo.EXPECT().
			ApplyStockChange(gomock.Any(), productID, -6, domain.ChangePurchase, "").
			Return(nil, serviceerrors.NewConflictError("insufficient stock"))

		change, err := svc.Purchase(context.Background(), productID, 6)
		if change != nil {
			t.Fatal("expected nil change on conflict")
		}
		if !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			t.Fatalf("expected conflict error, got %v", err)
		}
	})

	t.Run("not found passes through", func(t *testing.T) {
		svc, m := setupLedgerService(t)

		m.ledgerRepo.EXPECT().
			ApplyStockChange(gomock.Any(), productID, -1, domain.ChangePurchase, "").
			Return(nil, serviceerrors.NewNotFoundError("entity not found"))

		_, err := svc.Purchase(context.Background(), productID, 1)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected not found error, got %v", err)
		}
	})

	t.Run("storage failure is not masked as conflict", func(t *testing.T) {
		svc, m := setupLedgerService(t)

		m.ledgerRepo.EXPECT().
			ApplyStockChange(gomock.Any(), productID, -1, domain.ChangePurchase, "").
			Return(nil, errors.New("connection reset"))

		_, err := svc.Purchase(context.Background(), productID, 1)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			t.Fatal("storage failure must not surface as conflict")
		}
	})
}

func TestLedgerService_PurchaseAlerting(t *testing.T) {
	productID := domain.ID("aabbccddee112233aabbccdd")

	purchase := func(t *testing.T, svc *LedgerService, m *ledgerMocks, newStock int) {
		t.Helper()
		m.ledgerRepo.EXPECT().
			ApplyStockChange(gomock.Any(), productID, -1, domain.ChangePurchase, "").
			Return(&domain.StockChange{
				ProductID:  productID,
				SKU:        "SKU-002",
				ChangeType: domain.ChangePurchase,
				Delta:      -1,
				NewStock:   newStock,
			}, nil)
		m.productCache.EXPECT().Del(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := svc.Purchase(context.Background(), productID, 1); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	t.Run("no alert above threshold", func(t *testing.T) {
		svc, m := setupLedgerService(t)
		// stock 7 -> 6: no Record expectation, gomock fails on any call
		purchase(t, svc, m, 6)
	})

	t.Run("alert at threshold", func(t *testing.T) {
		svc, m := setupLedgerService(t)

		m.alertRepo.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, alert *domain.LowStockAlert) error {
				if alert.Stock != 5 {
					t.Fatalf("expected alert stock 5, got %d", alert.Stock)
				}
				if alert.Threshold != testThreshold {
					t.Fatalf("expected threshold %d, got %d", testThreshold, alert.Threshold)
				}
				if alert.SKU != "SKU-002" {
					t.Fatalf("expected sku SKU-002, got %q", alert.SKU)
				}
				return nil
			})

		purchase(t, svc, m, 5)
	})

	t.Run("alert re-fires below threshold", func(t *testing.T) {
		// level-triggered: 5 alerted already, 4 alerts again
		svc, m := setupLedgerService(t)

		m.alertRepo.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, alert *domain.LowStockAlert) error {
				if alert.Stock != 4 {
					t.Fatalf("expected alert stock 4, got %d", alert.Stock)
				}
				return nil
			})

		purchase(t, svc, m, 4)
	})

	t.Run("alert failure never fails the purchase", func(t *testing.T) {
		svc, m := setupLedgerService(t)

		m.ledgerRepo.EXPECT().
			ApplyStockChange(gomock.Any(), productID, -1, domain.ChangePurchase, "").
			Return(&domain.StockChange{
				ProductID: productID,
				SKU:       "SKU-002",
				Delta:     -1,
				NewStock:  3,
			}, nil)
		m.productCache.EXPECT().Del(gomock.Any(), gomock.Any()).Return(nil)
		m.alertRepo.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			Return(errors.New("broker unreachable"))

		change, err := svc.Purchase(context.Background(), productID, 1)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if change.NewStock != 3 {
			t.Fatalf("expected new stock 3, got %d", change.NewStock)
		}
	})
}

func TestLedgerService_Restock(t *testing.T) {
	productID := domain.ID("aabbccddee112233aabbccdd")

	t.Run("delegates positive delta with reason", func(t *testing.T) {
		svc, m := setupLedgerService(t)

		m.ledgerRepo.EXPECT().
			ApplyStockChange(gomock.Any(), productID, 3, domain.ChangeRestock, "cancelled").
			Return(&domain.StockChange{
				ProductID:  productID,
				SKU:        "SKU-001",
				ChangeType: domain.ChangeRestock,
				Delta:      3,
				NewStock:   8,
			}, nil)
		m.productCache.EXPECT().Del(gomock.Any(), gomock.Any()).Return(nil)

		change, err := svc.Restock(context.Background(), productID, 3, "cancelled")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if change.NewStock != 8 {
			t.Fatalf("expected new stock 8, got %d", change.NewStock)
		}
	})

	t.Run("no alert evaluation even at low stock", func(t *testing.T) {
		svc, m := setupLedgerService(t)

		// restocking 1 onto stock 0 leaves new stock 1, well under the
		// threshold, but restocks never alert
		m.ledgerRepo.EXPECT().
			ApplyStockChange(gomock.Any(), productID, 1, domain.ChangeRestock, "").
			Return(&domain.StockChange{
				ProductID:  productID,
				SKU:        "SKU-001",
				ChangeType: domain.ChangeRestock,
				Delta:      1,
				NewStock:   1,
			}, nil)
		m.productCache.EXPECT().Del(gomock.Any(), gomock.Any()).Return(nil)

		if _, err := svc.Restock(context.Background(), productID, 1, ""); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("rejects non-positive quantity before store access", func(t *testing.T) {
		svc, _ := setupLedgerService(t)

		_, err := svc.Restock(context.Background(), productID, 0, "")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected invalid request error, got %v", err)
		}
	})

	t.Run("not found passes through", func(t *testing.T) {
		svc, m := setupLedgerService(t)

		m.ledgerRepo.EXPECT().
			ApplyStockChange(gomock.Any(), productID, 1, domain.ChangeRestock, "").
			Return(nil, serviceerrors.NewNotFoundError("entity not found"))

		_, err := svc.Restock(context.Background(), productID, 1, "")
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected not found error, got %v", err)
		}
	})
}

func TestLedgerService_History(t *testing.T) {
	svc, m := setupLedgerService(t)
	productID := domain.ID("aabbccddee112233aabbccdd")

	expected := []*domain.StockChange{
		{ChangeType: domain.ChangePurchase, Delta: -1},
		{ChangeType: domain.ChangeRestock, Delta: 1},
	}
	m.ledgerRepo.EXPECT().
		HistoryByProductID(gomock.Any(), productID).
		Return(expected, nil)

	history, err := svc.History(context.Background(), productID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(history))
	}
}

func TestLedgerService_ListAlerts(t *testing.T) {
	svc, m := setupLedgerService(t)
	productID := domain.ID("aabbccddee112233aabbccdd")

	m.alertRepo.EXPECT().
		ListByProductID(gomock.Any(), productID).
		Return([]*domain.LowStockAlert{{SKU: "SKU-002", Stock: 4}}, nil)

	alerts, err := svc.ListAlerts(context.Background(), productID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts))
	}
}
