package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/stock-ledger/internal/adapters/http/handlers"
	"github.com/rafaelleal24/stock-ledger/internal/core/domain"
	"github.com/rafaelleal24/stock-ledger/internal/core/dto"
	"github.com/rafaelleal24/stock-ledger/internal/core/service"
	"github.com/rafaelleal24/stock-ledger/internal/core/serviceerrors"
)

type LedgerController struct {
	ledgerService *service.LedgerService
}

type StockChangeResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	SKU        string    `json:"sku"`
	ChangeType string    `json:"change_type"`
	Delta      int       `json:"delta"`
	Reason     string    `json:"reason,omitempty"`
	NewStock   int       `json:"new_stock"`
	CreatedAt  time.Time `json:"created_at"`
}

type LowStockAlertResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	SKU       string    `json:"sku"`
	Stock     int       `json:"stock"`
	Threshold int       `json:"threshold"`
	CreatedAt time.Time `json:"created_at"`
}

func NewStockChangeResponse(change *domain.StockChange) StockChangeResponse {
	return StockChangeResponse{
		ID:         string(change.ID),
		ProductID:  string(change.ProductID),
		SKU:        change.SKU,
		ChangeType: string(change.ChangeType),
		Delta:      change.Delta,
		Reason:     change.Reason,
		NewStock:   change.NewStock,
		CreatedAt:  change.CreatedAt,
	}
}

func NewLowStockAlertResponse(alert *domain.LowStockAlert) LowStockAlertResponse {
	return LowStockAlertResponse{
		ID:        string(alert.ID),
		ProductID: string(alert.ProductID),
		SKU:       alert.SKU,
		Stock:     alert.Stock,
		Threshold: alert.Threshold,
		CreatedAt: alert.CreatedAt,
	}
}

func NewLedgerController(ledgerService *service.LedgerService) *LedgerController {
	return &LedgerController{ledgerService: ledgerService}
}

// Purchase godoc
// @Summary     Purchase stock
// @Description Atomically deducts stock for a product, rejecting the purchase when stock is insufficient
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Param       request body     dto.PurchaseRequest true "Purchase data"
// @Success     200     {object} StockChangeResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/purchase [post]
func (lc *LedgerController) Purchase(c *gin.Context) {
	var request dto.PurchaseRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	change, err := lc.ledgerService.Purchase(c.Request.Context(), request.ProductID, request.Quantity)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewStockChangeResponse(change))
}

// Restock godoc
// @Summary     Restock a product
// @Description Atomically increases stock for a product
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Param       request body     dto.RestockRequest true "Restock data"
// @Success     200     {object} StockChangeResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/restock [post]
func (lc *LedgerController) Restock(c *gin.Context) {
	var request dto.RestockRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	change, err := lc.ledgerService.Restock(c.Request.Context(), request.ProductID, request.Quantity, request.Reason)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewStockChangeResponse(change))
}

// GetHistory godoc
// @Summary     Get stock history
// @Description Returns the ordered stock change history for a product
// @Tags        ledger
// @Produce     json
// @Param       id  path    string true "Product ID"
// @Success     200 {array} StockChangeResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/history [get]
func (lc *LedgerController) GetHistory(c *gin.Context) {
	productID := c.Param("id")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}
	changes, err := lc.ledgerService.History(c.Request.Context(), domain.ID(productID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]StockChangeResponse, len(changes))
	for i, change := range changes {
		response[i] = NewStockChangeResponse(change)
	}

	c.JSON(http.StatusOK, response)
}

// GetAlerts godoc
// @Summary     Get low stock alerts
// @Description Returns the low stock alerts recorded for a product, newest first
// @Tags        ledger
// @Produce     json
// @Param       id  path    string true "Product ID"
// @Success     200 {array} LowStockAlertResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/alerts [get]
func (lc *LedgerController) GetAlerts(c *gin.Context) {
	productID := c.Param("id")
	if !domain.ValidateID(productID) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("Invalid product ID"))
		return
	}
	alerts, err := lc.ledgerService.ListAlerts(c.Request.Context(), domain.ID(productID))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]LowStockAlertResponse, len(alerts))
	for i, alert := range alerts {
		response[i] = NewLowStockAlertResponse(alert)
	}

	c.JSON(http.StatusOK, response)
}
