package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un artículo.
type CreateItemRequest struct {
	Name            string           `json:"name" validate:"required,min=1,max=255"`
	Description     *string          `json:"description"`
	UPC             *string          `json:"upc" validate:"omitempty,max=50"`
	SKU             *string          `json:"sku" validate:"omitempty,max=100"`
	CategoryID      *string          `json:"category_id" validate:"omitempty,uuid4"`
	Cost            decimal.Decimal  `json:"cost" validate:"min=0"`
	SalePrice       decimal.Decimal  `json:"sale_price" validate:"min=0"`
	QuantityInStock int              `json:"quantity_in_stock" validate:"min=0"`
	MinStockLevel   *int             `json:"min_stock_level" validate:"omitempty,min=0"`
	MaxStockLevel   *int             `json:"max_stock_level" validate:"omitempty,min=1"`
	Location        *string          `json:"location" validate:"omitempty,max=100"`
	ConditionNotes  *string          `json:"condition_notes"`
	Tags            []string         `json:"tags"`
	ImageURL        *string          `json:"image_url" validate:"omitempty,url"`
}

// UpdateItemRequest actualización parcial: solo los campos presentes cambian.
type UpdateItemRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description     *string          `json:"description"`
	UPC             *string          `json:"upc" validate:"omitempty,max=50"`
	SKU             *string          `json:"sku" validate:"omitempty,max=100"`
	CategoryID      *string          `json:"category_id" validate:"omitempty,uuid4"`
	Cost            *decimal.Decimal `json:"cost" validate:"omitempty,min=0"`
	SalePrice       *decimal.Decimal `json:"sale_price" validate:"omitempty,min=0"`
	QuantityInStock *int             `json:"quantity_in_stock" validate:"omitempty,min=0"`
	MinStockLevel   *int             `json:"min_stock_level" validate:"omitempty,min=0"`
	MaxStockLevel   *int             `json:"max_stock_level" validate:"omitempty,min=1"`
	Location        *string          `json:"location" validate:"omitempty,max=100"`
	ConditionNotes  *string          `json:"condition_notes"`
	Tags            []string         `json:"tags"`
	ImageURL        *string          `json:"image_url" validate:"omitempty,url"`
}

// ListItemsRequest filtros de listado (query string).
type ListItemsRequest struct {
	Page        int    `query:"page" validate:"omitempty,min=1"`
	Limit       int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Search      string `query:"search"`
	Category    string `query:"category" validate:"omitempty,uuid4"`
	StockStatus string `query:"stockStatus" validate:"omitempty,oneof=low normal overstocked"`
	SortBy      string `query:"sortBy" validate:"omitempty,oneof=name cost sale_price profit_margin quantity_in_stock created_at"`
	SortOrder   string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// Defaults aplica los valores por defecto del listado.
func (r *ListItemsRequest) Defaults() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Limit <= 0 {
		r.Limit = 20
	}
	if r.SortBy == "" {
		r.SortBy = "created_at"
	}
	if r.SortOrder == "" {
		r.SortOrder = "desc"
	}
}

// BulkItemUpdate delta de cantidad de un artículo dentro del lote.
type BulkItemUpdate struct {
	ID             string  `json:"id" validate:"required,uuid4"`
	QuantityChange int     `json:"quantity_change"`
	Notes          *string `json:"notes"`
}

// BulkUpdateRequest lote de ajustes de cantidad; se aplica todo o nada.
type BulkUpdateRequest struct {
	Updates []BulkItemUpdate `json:"updates" validate:"required,min=1,dive"`
}

// BulkUpdateResult delta aplicado más la cantidad resultante.
type BulkUpdateResult struct {
	ID             string  `json:"id"`
	QuantityChange int     `json:"quantity_change"`
	Notes          *string `json:"notes,omitempty"`
	NewQuantity    int     `json:"newQuantity"`
}

// ItemResponse salida de un artículo (incluye datos de categoría del LEFT JOIN).
type ItemResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     *string         `json:"description"`
	UPC             *string         `json:"upc"`
	SKU             *string         `json:"sku"`
	CategoryID      *string         `json:"category_id"`
	Cost            decimal.Decimal `json:"cost"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	QuantityInStock int             `json:"quantity_in_stock"`
	MinStockLevel   int             `json:"min_stock_level"`
	MaxStockLevel   *int            `json:"max_stock_level"`
	Location        *string         `json:"location"`
	ConditionNotes  *string         `json:"condition_notes"`
	Tags            []string        `json:"tags"`
	ImageURL        *string         `json:"image_url"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	CategoryName    *string         `json:"category_name,omitempty"`
	CategoryColor   *string         `json:"category_color,omitempty"`
	CategoryIcon    *string         `json:"category_icon,omitempty"`
}

// ItemListResponse sobre de listado paginado.
type ItemListResponse struct {
	Items      []ItemResponse `json:"items"`
	Pagination Pagination     `json:"pagination"`
}
