package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest línea de una venta nueva.
type SaleLineRequest struct {
	ItemID    string          `json:"item_id" validate:"required,uuid4"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	SalePrice decimal.Decimal `json:"sale_price" validate:"min=0"`
}

// CreateSaleRequest entrada para registrar una venta. La operación completa
// (cabecera + líneas + descuentos de stock) es una sola transacción.
type CreateSaleRequest struct {
	CustomerID *string           `json:"customer_id" validate:"omitempty,uuid4"`
	SaleDate   time.Time         `json:"sale_date" validate:"required"`
	Items      []SaleLineRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleResponse cabecera de venta creada.
type SaleResponse struct {
	ID             string          `json:"id"`
	CustomerID     *string         `json:"customer_id"`
	SaleDate       time.Time       `json:"sale_date"`
	Status         string          `json:"status"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	CreatedAt      time.Time       `json:"created_at"`
}

// SaleRowResponse fila del listado de ventas (cabecera + línea + joins).
type SaleRowResponse struct {
	SaleResponse
	CustomerName *string         `json:"customer_name"`
	ItemID       string          `json:"item_id"`
	Quantity     int             `json:"quantity"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	ProfitAmount decimal.Decimal `json:"profit_amount"`
	ItemName     string          `json:"item_name"`
	ItemUPC      *string         `json:"upc"`
}
