package domain

import "time"

type Product struct {
	ID        ID
	SKU       string
	Name      string
	Price     Amount
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewProduct(sku string, name string, price Amount, stock int) *Product {
	return &Product{
		SKU:       sku,
		Name:      name,
		Price:     price,
		Stock:     stock,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
