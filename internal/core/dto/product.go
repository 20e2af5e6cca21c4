package dto

type CreateProductRequest struct {
	SKU   string `json:"sku" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Price int    `json:"price" binding:"required,gt=0"`
	Stock int    `json:"stock" binding:"gte=0"`
}
