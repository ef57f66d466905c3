package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item artículo del inventario. El borrado es lógico: IsActive pasa a false y
// la fila queda fuera de todos los listados y búsquedas normales.
// Invariante: entre artículos activos, UPC y SKU (si existen) no se repiten.
type Item struct {
	ID              string
	Name            string
	Description     *string
	UPC             *string
	SKU             *string
	CategoryID      *string
	Cost            decimal.Decimal
	SalePrice       decimal.Decimal
	QuantityInStock int
	MinStockLevel   int
	MaxStockLevel   *int
	Location        *string
	ConditionNotes  *string
	Tags            []string
	ImageURL        *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ItemWithCategory fila de listado: artículo más los datos de su categoría (LEFT JOIN).
type ItemWithCategory struct {
	Item
	CategoryName  *string
	CategoryColor *string
	CategoryIcon  *string
}

// StockStatus clasificación derivada de la cantidad frente a los umbrales.
// Nunca se persiste; se calcula al consultar.
const (
	StockStatusLow         = "low"
	StockStatusNormal      = "normal"
	StockStatusOverstocked = "overstocked"
)
