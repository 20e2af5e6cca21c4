package domain

import "time"

type ChangeType string

const (
	ChangePurchase ChangeType = "PURCHASE"
	ChangeRestock  ChangeType = "RESTOCK"
)

func (c ChangeType) IsValid() bool {
	return c == ChangePurchase || c == ChangeRestock
}

// StockChange is one accepted ledger mutation. Entries are append-only:
// they are written in the same transaction as the stock update they record
// and are never modified afterwards.
type StockChange struct {
	ID         ID
	ProductID  ID
	SKU        string
	ChangeType ChangeType
	Delta      int
	Reason     string
	NewStock   int
	CreatedAt  time.Time
}

type LowStockAlert struct {
	ID        ID
	ProductID ID
	SKU       string
	Stock     int
	Threshold int
	CreatedAt time.Time
}

type StockChangedEvent struct {
	ProductID  ID         `json:"product_id"`
	SKU        string     `json:"sku"`
	ChangeType ChangeType `json:"change_type"`
	Delta      int        `json:"delta"`
	NewStock   int        `json:"new_stock"`
	ChangedAt  time.Time  `json:"changed_at"`
}

func (e *StockChangedEvent) GetName() string {
	return "stock.changed"
}

func (e *StockChangedEvent) GetEntityName() string {
	return "stock"
}

func NewStockChangedEvent(change *StockChange) *StockChangedEvent {
	return &StockChangedEvent{
		ProductID:  change.ProductID,
		SKU:        change.SKU,
		ChangeType: change.ChangeType,
		Delta:      change.Delta,
		NewStock:   change.NewStock,
		ChangedAt:  change.CreatedAt,
	}
}

type LowStockEvent struct {
	ProductID ID        `json:"product_id"`
	SKU       string    `json:"sku"`
	Stock     int       `json:"stock"`
	Threshold int       `json:"threshold"`
	AlertedAt time.Time `json:"alerted_at"`
}

func (e *LowStockEvent) GetName() string {
	return "stock.low"
}

func (e *LowStockEvent) GetEntityName() string {
	return "stock"
}

func NewLowStockEvent(productID ID, sku string, stock, threshold int, alertedAt time.Time) *LowStockEvent {
	return &LowStockEvent{
		ProductID: productID,
		SKU:       sku,
		Stock:     stock,
		Threshold: threshold,
		AlertedAt: alertedAt,
	}
}
