package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta.
const (
	SaleStatusCompleted = "completed"
)

// Sale cabecera de una venta. Posee en exclusiva sus SaleItem.
type Sale struct {
	ID             string
	CustomerID     *string
	SaleDate       time.Time
	Status         string
	TotalAmount    decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	CreatedAt      time.Time
}

// SaleItem línea de venta. CostAtSale es el costo del artículo congelado al
// momento de la venta: cambios de costo posteriores no alteran la utilidad histórica.
type SaleItem struct {
	ID           string
	SaleID       string
	ItemID       string
	Quantity     int
	SalePrice    decimal.Decimal
	CostAtSale   decimal.Decimal
	TotalPrice   decimal.Decimal
	ProfitAmount decimal.Decimal
}

// SaleRow fila del listado de ventas: cabecera + línea + datos del cliente y el artículo.
type SaleRow struct {
	Sale
	CustomerName *string
	ItemID       string
	Quantity     int
	SalePrice    decimal.Decimal
	ProfitAmount decimal.Decimal
	ItemName     string
	ItemUPC      *string
}
