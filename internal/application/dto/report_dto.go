package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventorySummaryQuery filtros del reporte de resumen de inventario.
type InventorySummaryQuery struct {
	Category    string `query:"category" validate:"omitempty,uuid4"`
	StockStatus string `query:"stockStatus" validate:"omitempty,oneof=low normal overstocked"`
	SortBy      string `query:"sortBy" validate:"omitempty,oneof=name cost sale_price profit_margin quantity_in_stock"`
	SortOrder   string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// Defaults aplica el orden por defecto (name asc).
func (q *InventorySummaryQuery) Defaults() {
	if q.SortBy == "" {
		q.SortBy = "name"
	}
	if q.SortOrder == "" {
		q.SortOrder = "asc"
	}
}

// TopSellingQuery filtros del ranking de más vendidos.
type TopSellingQuery struct {
	Period   string `query:"period" validate:"omitempty,oneof=7d 30d 90d 1y all"`
	Category string `query:"category" validate:"omitempty,uuid4"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// Defaults periodo 30d, top 20.
func (q *TopSellingQuery) Defaults() {
	if q.Period == "" {
		q.Period = "30d"
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}
}

// ProfitAnalysisQuery filtros del análisis de utilidad.
type ProfitAnalysisQuery struct {
	Period  string `query:"period" validate:"omitempty,oneof=7d 30d 90d 1y all"`
	GroupBy string `query:"groupBy" validate:"omitempty,oneof=day week month category"`
}

// Defaults periodo 30d agrupado por mes.
func (q *ProfitAnalysisQuery) Defaults() {
	if q.Period == "" {
		q.Period = "30d"
	}
	if q.GroupBy == "" {
		q.GroupBy = "month"
	}
}

// ThresholdQuery umbral explícito opcional para low-stock / overstocked.
type ThresholdQuery struct {
	Threshold *int `query:"threshold" validate:"omitempty,min=0"`
}

// SalesPerformanceQuery rango de fechas explícito y agrupación.
type SalesPerformanceQuery struct {
	StartDate *time.Time `query:"startDate"`
	EndDate   *time.Time `query:"endDate"`
	GroupBy   string     `query:"groupBy" validate:"omitempty,oneof=day week month"`
}

// Defaults agrupación por día.
func (q *SalesPerformanceQuery) Defaults() {
	if q.GroupBy == "" {
		q.GroupBy = "day"
	}
}

// CustomReportRequest SELECT arbitrario con parámetros posicionales.
type CustomReportRequest struct {
	Query       string  `json:"query" validate:"required,min=1"`
	Params      []any   `json:"params"`
	Description *string `json:"description"`
}

// CustomReportResponse resultado del reporte custom.
type CustomReportResponse struct {
	Data        []map[string]any `json:"data"`
	RowCount    int              `json:"rowCount"`
	Description *string          `json:"description"`
	ExecutedAt  time.Time        `json:"executedAt"`
}

// ExportQuery formato de exportación.
type ExportQuery struct {
	Format string `query:"format" validate:"omitempty,oneof=json csv pdf"`
}

// ExportResponse sobre JSON de una exportación.
type ExportResponse struct {
	ReportType string           `json:"reportType"`
	Data       []map[string]any `json:"data"`
	RowCount   int              `json:"rowCount"`
	ExportedAt time.Time        `json:"exportedAt"`
}

// DashboardSummary resumen del dashboard: inventario, alertas, ventas a 30
// días y top de categorías.
type DashboardSummary struct {
	Inventory     DashboardInventory  `json:"inventory"`
	Alerts        DashboardAlerts     `json:"alerts"`
	Sales         DashboardSales      `json:"sales"`
	TopCategories []TopCategorySales  `json:"topCategories"`
}

// DashboardInventory valor total del inventario activo.
type DashboardInventory struct {
	TotalItems           int             `json:"total_items"`
	TotalQuantity        int             `json:"total_quantity"`
	TotalCostValue       decimal.Decimal `json:"total_cost_value"`
	TotalSaleValue       decimal.Decimal `json:"total_sale_value"`
	TotalPotentialProfit decimal.Decimal `json:"total_potential_profit"`
}

// DashboardAlerts contadores de alertas.
type DashboardAlerts struct {
	LowStock int `json:"lowStock"`
}

// DashboardSales ventas completadas de los últimos 30 días.
type DashboardSales struct {
	TotalSales   int             `json:"total_sales"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	NetRevenue   decimal.Decimal `json:"net_revenue"`
}

// TopCategorySales categoría del top 5 por ingresos.
type TopCategorySales struct {
	CategoryName  string          `json:"category_name"`
	CategoryColor *string         `json:"category_color"`
	SalesCount    int             `json:"sales_count"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// TopSellingItem fila del ranking de más vendidos.
type TopSellingItem struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	UPC               *string         `json:"upc"`
	CategoryName      *string         `json:"category_name"`
	CategoryColor     *string         `json:"category_color"`
	TotalSales        int             `json:"total_sales"`
	TotalQuantitySold int             `json:"total_quantity_sold"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AvgProfitPerItem  decimal.Decimal `json:"avg_profit_per_item"`
	TotalProfit       decimal.Decimal `json:"total_profit"`
}

// ProfitAnalysisRow utilidad agregada por periodo o categoría.
type ProfitAnalysisRow struct {
	Period           string          `json:"period"`
	PeriodColor      *string         `json:"period_color,omitempty"`
	TotalSales       int             `json:"total_sales"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalProfit      decimal.Decimal `json:"total_profit"`
	AvgProfitPerSale decimal.Decimal `json:"avg_profit_per_sale"`
	TotalItemsSold   int             `json:"total_items_sold"`
}

// SalesPerformanceRow desempeño de ventas por periodo.
type SalesPerformanceRow struct {
	Period           string          `json:"period"`
	TotalSales       int             `json:"total_sales"`
	TotalItemsSold   int             `json:"total_items_sold"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalProfit      decimal.Decimal `json:"total_profit"`
	AvgSaleValue     decimal.Decimal `json:"avg_sale_value"`
	AvgProfitPerSale decimal.Decimal `json:"avg_profit_per_sale"`
}
