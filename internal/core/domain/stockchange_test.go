package domain

import (
	"testing"
	"time"
)

func TestChangeType_IsValid(t *testing.T) {
	tests := []struct {
		changeType ChangeType
		valid      bool
	}{
		{ChangePurchase, true},
		{ChangeRestock, true},
		{"SALE", false},
		{"purchase", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.changeType), func(t *testing.T) {
			if got := tt.changeType.IsValid(); got != tt.valid {
				t.Errorf("ChangeType(%q).IsValid() = %v, want %v", tt.changeType, got, tt.valid)
			}
		})
	}
}

func TestNewStockChangedEvent(t *testing.T) {
	now := time.Now()
	change := &StockChange{
		ID:         "aabbccddee112233aabbccdd",
		ProductID:  "aabbccddee112233aabbccd1",
		SKU:        "SKU-001",
		ChangeType: ChangePurchase,
		Delta:      -2,
		NewStock:   8,
		CreatedAt:  now,
	}

	event := NewStockChangedEvent(change)

	if event.GetName() != "stock.changed" {
		t.Fatalf("expected event name 'stock.changed', got %q", event.GetName())
	}
	if event.GetEntityName() != "stock" {
		t.Fatalf("expected entity name 'stock', got %q", event.GetEntityName())
	}
	if event.ProductID != change.ProductID {
		t.Fatalf("expected product id %s, got %s", change.ProductID, event.ProductID)
	}
	if event.Delta != -2 {
		t.Fatalf("expected delta -2, got %d", event.Delta)
	}
	if event.NewStock != 8 {
		t.Fatalf("expected new stock 8, got %d", event.NewStock)
	}
	if !event.ChangedAt.Equal(now) {
		t.Fatalf("expected changed_at %v, got %v", now, event.ChangedAt)
	}
}

func TestNewLowStockEvent(t *testing.T) {
	now := time.Now()
	event := NewLowStockEvent("aabbccddee112233aabbccdd", "SKU-002", 4, 5, now)

	if event.GetName() != "stock.low" {
		t.Fatalf("expected event name 'stock.low', got %q", event.GetName())
	}
	if event.GetEntityName() != "stock" {
		t.Fatalf("expected entity name 'stock', got %q", event.GetEntityName())
	}
	if event.Stock != 4 {
		t.Fatalf("expected stock 4, got %d", event.Stock)
	}
	if event.Threshold != 5 {
		t.Fatalf("expected threshold 5, got %d", event.Threshold)
	}
}
