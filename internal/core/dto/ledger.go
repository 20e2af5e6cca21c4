package dto

import "github.com/rafaelleal24/stock-ledger/internal/core/domain"

type PurchaseRequest struct {
	ProductID domain.ID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
}

type RestockRequest struct {
	ProductID domain.ID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required"`
	Reason    string    `json:"reason"`
}
