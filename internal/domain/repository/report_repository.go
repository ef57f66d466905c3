package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RowSet resultado tabular con el orden de columnas del statement original.
// Lo usan los reportes respaldados por vistas, los exports y el reporte custom,
// donde el conjunto de columnas no se conoce en compilación.
type RowSet struct {
	Columns []string
	Rows    [][]any
}

// Maps convierte cada fila en un mapa columna→valor (para respuestas JSON).
func (rs *RowSet) Maps() []map[string]any {
	out := make([]map[string]any, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		m := make(map[string]any, len(rs.Columns))
		for i, col := range rs.Columns {
			m[col] = row[i]
		}
		out = append(out, m)
	}
	return out
}

// InventoryTotals agregados del inventario activo para el dashboard.
type InventoryTotals struct {
	TotalItems           int
	TotalQuantity        int
	TotalCostValue       decimal.Decimal
	TotalSaleValue       decimal.Decimal
	TotalPotentialProfit decimal.Decimal
}

// SalesTotals agregados de ventas completadas en una ventana de días.
type SalesTotals struct {
	TotalSales   int
	TotalRevenue decimal.Decimal
	NetRevenue   decimal.Decimal
}

// CategorySales ventas agrupadas por categoría.
type CategorySales struct {
	CategoryName  string
	CategoryColor *string
	SalesCount    int
	TotalRevenue  decimal.Decimal
}

// TopSellingRow artículo del ranking de más vendidos.
type TopSellingRow struct {
	ItemID            string
	Name              string
	UPC               *string
	CategoryName      *string
	CategoryColor     *string
	TotalSales        int
	TotalQuantitySold int
	TotalRevenue      decimal.Decimal
	AvgProfitPerItem  decimal.Decimal
	TotalProfit       decimal.Decimal
}

// ProfitRow agregación de utilidad por periodo o por categoría.
// La utilidad sale siempre del cost_at_sale congelado en cada línea.
type ProfitRow struct {
	Period           string
	PeriodColor      *string
	TotalSales       int
	TotalRevenue     decimal.Decimal
	TotalProfit      decimal.Decimal
	AvgProfitPerSale decimal.Decimal
	TotalItemsSold   int
}

// PerformanceRow desempeño de ventas por periodo.
type PerformanceRow struct {
	Period           string
	TotalSales       int
	TotalItemsSold   int
	TotalRevenue     decimal.Decimal
	TotalProfit      decimal.Decimal
	AvgSaleValue     decimal.Decimal
	AvgProfitPerSale decimal.Decimal
}

// InventorySummaryFilter filtros del reporte de resumen de inventario.
// SortBy/SortOrder llegan restringidos por el DTO a listas cerradas.
type InventorySummaryFilter struct {
	CategoryID  string
	StockStatus string
	SortBy      string
	SortOrder   string
}

// TopSellingFilter filtros del ranking de más vendidos.
type TopSellingFilter struct {
	Period     string // 7d | 30d | 90d | 1y | all
	CategoryID string
	Limit      int
}

// ReportRepository consultas de solo lectura para reportes y dashboard.
type ReportRepository interface {
	InventoryTotals(ctx context.Context) (InventoryTotals, error)
	LowStockCount(ctx context.Context) (int, error)
	RecentSalesTotals(ctx context.Context, days int) (SalesTotals, error)
	TopCategories(ctx context.Context, days, limit int) ([]CategorySales, error)

	InventorySummary(ctx context.Context, f InventorySummaryFilter) (*RowSet, error)
	TopSelling(ctx context.Context, f TopSellingFilter) ([]TopSellingRow, error)
	ProfitAnalysis(ctx context.Context, period, groupBy string) ([]ProfitRow, error)
	LowStockReport(ctx context.Context, threshold *int) (*RowSet, error)
	OverstockedReport(ctx context.Context, threshold *int) (*RowSet, error)
	SalesPerformance(ctx context.Context, start, end *time.Time, groupBy string) ([]PerformanceRow, error)

	// Export devuelve el dataset plano del tipo de reporte indicado
	// (inventory | sales | profit | low-stock | overstocked).
	Export(ctx context.Context, reportType string) (*RowSet, error)

	// Custom ejecuta un SELECT arbitrario ya filtrado por el caso de uso.
	Custom(ctx context.Context, query string, params []any) (*RowSet, error)
}
