package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/resellhub/reseller-api/internal/domain"
	"github.com/resellhub/reseller-api/internal/domain/entity"
	"github.com/resellhub/reseller-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// periodDays tabla fija de ventanas temporales. Los días se interpolan como
// literal INTERVAL solo desde esta tabla, nunca desde el request.
var periodDays = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
	"1y":  365,
}

// profitGroupExpr expresiones de agrupación temporal de lista cerrada.
var profitGroupExpr = map[string]string{
	"day":   "TO_CHAR(s.sale_date, 'YYYY-MM-DD')",
	"week":  "TO_CHAR(DATE_TRUNC('week', s.sale_date), 'YYYY-MM-DD')",
	"month": "TO_CHAR(s.sale_date, 'YYYY-MM')",
}

// inventorySummarySortColumns columnas permitidas del resumen de inventario.
var inventorySummarySortColumns = map[string]string{
	"name":              "i.name",
	"cost":              "i.cost",
	"sale_price":        "i.sale_price",
	"profit_margin":     "(i.sale_price - i.cost)",
	"quantity_in_stock": "i.quantity_in_stock",
}

// ReportRepo consultas de solo lectura para reportes, dashboard y exportaciones.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// periodCondition filtro de fecha para el periodo; "all" (o desconocido) no filtra.
func periodCondition(column, period string) string {
	days, ok := periodDays[period]
	if !ok {
		return ""
	}
	return fmt.Sprintf(" AND %s >= NOW() - INTERVAL '%d days'", column, days)
}

// InventoryTotals agregados del inventario activo.
func (r *ReportRepo) InventoryTotals(ctx context.Context) (repository.InventoryTotals, error) {
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(quantity_in_stock), 0),
			COALESCE(SUM(cost * quantity_in_stock), 0),
			COALESCE(SUM(sale_price * quantity_in_stock), 0),
			COALESCE(SUM((sale_price - cost) * quantity_in_stock), 0)
		FROM items
		WHERE is_active = true`
	var t repository.InventoryTotals
	err := r.q.QueryRow(ctx, query).Scan(
		&t.TotalItems, &t.TotalQuantity, &t.TotalCostValue, &t.TotalSaleValue, &t.TotalPotentialProfit,
	)
	if err != nil {
		return t, fmt.Errorf("inventory totals: %w", err)
	}
	return t, nil
}

// LowStockCount cuenta los artículos activos en o bajo su umbral mínimo.
func (r *ReportRepo) LowStockCount(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM items WHERE is_active = true AND quantity_in_stock <= min_stock_level`,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("low stock count: %w", err)
	}
	return n, nil
}

// RecentSalesTotals agregados de ventas completadas en los últimos days días.
func (r *ReportRepo) RecentSalesTotals(ctx context.Context, days int) (repository.SalesTotals, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*),
			COALESCE(SUM(total_amount), 0),
			COALESCE(SUM(total_amount - tax_amount - discount_amount), 0)
		FROM sales
		WHERE status = '%s' AND sale_date >= NOW() - INTERVAL '%d days'`,
		entity.SaleStatusCompleted, days)
	var t repository.SalesTotals
	if err := r.q.QueryRow(ctx, query).Scan(&t.TotalSales, &t.TotalRevenue, &t.NetRevenue); err != nil {
		return t, fmt.Errorf("recent sales totals: %w", err)
	}
	return t, nil
}

// TopCategories categorías con más ingresos en la ventana de días.
func (r *ReportRepo) TopCategories(ctx context.Context, days, limit int) ([]repository.CategorySales, error) {
	query := fmt.Sprintf(`
		SELECT c.name, c.color, COUNT(DISTINCT s.id), COALESCE(SUM(si.total_price), 0)
		FROM sales s
		JOIN sale_items si ON si.sale_id = s.id
		JOIN items i ON i.id = si.item_id
		JOIN categories c ON c.id = i.category_id
		WHERE s.status = '%s' AND s.sale_date >= NOW() - INTERVAL '%d days'
		GROUP BY c.name, c.color
		ORDER BY 4 DESC
		LIMIT $1`,
		entity.SaleStatusCompleted, days)
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top categories: %w", err)
	}
	defer rows.Close()

	var list []repository.CategorySales
	for rows.Next() {
		var c repository.CategorySales
		if err := rows.Scan(&c.CategoryName, &c.CategoryColor, &c.SalesCount, &c.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan category sales: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// inventorySummarySelect dataset plano del inventario activo con métricas derivadas.
const inventorySummarySelect = `
	SELECT i.id, i.name, i.upc, i.sku, c.name AS category_name,
		i.cost, i.sale_price, (i.sale_price - i.cost) AS profit_margin,
		i.quantity_in_stock, i.min_stock_level, i.max_stock_level,
		(i.cost * i.quantity_in_stock) AS total_cost_value,
		(i.sale_price * i.quantity_in_stock) AS total_sale_value,
		CASE
			WHEN i.quantity_in_stock <= i.min_stock_level THEN 'low'
			WHEN i.quantity_in_stock >= COALESCE(i.max_stock_level, 999999) THEN 'overstocked'
			ELSE 'normal'
		END AS stock_status,
		i.location, i.created_at
	FROM items i
	LEFT JOIN categories c ON c.id = i.category_id`

// InventorySummary resumen del inventario con filtros y orden de lista cerrada.
func (r *ReportRepo) InventorySummary(ctx context.Context, f repository.InventorySummaryFilter) (*repository.RowSet, error) {
	conds := []string{"i.is_active = true"}
	var args []any

	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("i.category_id = $%d", len(args)))
	}
	switch f.StockStatus {
	case entity.StockStatusLow:
		conds = append(conds, "i.quantity_in_stock <= i.min_stock_level")
	case entity.StockStatusNormal:
		conds = append(conds, "i.quantity_in_stock > i.min_stock_level AND i.quantity_in_stock < COALESCE(i.max_stock_level, 999999)")
	case entity.StockStatusOverstocked:
		conds = append(conds, "i.quantity_in_stock >= COALESCE(i.max_stock_level, 999999)")
	}

	col, ok := inventorySummarySortColumns[f.SortBy]
	if !ok {
		col = "i.name"
	}
	dir := "ASC"
	if strings.EqualFold(f.SortOrder, "desc") {
		dir = "DESC"
	}

	query := fmt.Sprintf("%s WHERE %s ORDER BY %s %s",
		inventorySummarySelect, strings.Join(conds, " AND "), col, dir)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("inventory summary: %w", err)
	}
	defer rows.Close()
	return rowSetFromRows(rows)
}

// TopSelling ranking de artículos por cantidad vendida en el periodo.
func (r *ReportRepo) TopSelling(ctx context.Context, f repository.TopSellingFilter) ([]repository.TopSellingRow, error) {
	conds := fmt.Sprintf("s.status = '%s'", entity.SaleStatusCompleted)
	conds += periodCondition("s.sale_date", f.Period)
	var args []any
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		conds += fmt.Sprintf(" AND i.category_id = $%d", len(args))
	}
	args = append(args, f.Limit)

	query := fmt.Sprintf(`
		SELECT i.id, i.name, i.upc, c.name, c.color,
			COUNT(DISTINCT s.id),
			COALESCE(SUM(si.quantity), 0),
			COALESCE(SUM(si.total_price), 0),
			COALESCE(SUM(si.profit_amount) / NULLIF(SUM(si.quantity), 0), 0),
			COALESCE(SUM(si.profit_amount), 0)
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		JOIN items i ON i.id = si.item_id
		LEFT JOIN categories c ON c.id = i.category_id
		WHERE %s
		GROUP BY i.id, i.name, i.upc, c.name, c.color
		ORDER BY 7 DESC
		LIMIT $%d`, conds, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("top selling: %w", err)
	}
	defer rows.Close()

	var list []repository.TopSellingRow
	for rows.Next() {
		var row repository.TopSellingRow
		if err := rows.Scan(
			&row.ItemID, &row.Name, &row.UPC, &row.CategoryName, &row.CategoryColor,
			&row.TotalSales, &row.TotalQuantitySold, &row.TotalRevenue,
			&row.AvgProfitPerItem, &row.TotalProfit,
		); err != nil {
			return nil, fmt.Errorf("scan top selling: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ProfitAnalysis utilidad agregada por periodo temporal o por categoría,
// siempre sobre el cost_at_sale congelado en cada línea.
func (r *ReportRepo) ProfitAnalysis(ctx context.Context, period, groupBy string) ([]repository.ProfitRow, error) {
	where := fmt.Sprintf("s.status = '%s'", entity.SaleStatusCompleted)
	where += periodCondition("s.sale_date", period)

	var query string
	withColor := groupBy == "category"
	if withColor {
		query = fmt.Sprintf(`
			SELECT COALESCE(c.name, 'Sin categoría'), c.color,
				COUNT(DISTINCT s.id),
				COALESCE(SUM(si.total_price), 0),
				COALESCE(SUM(si.profit_amount), 0),
				COALESCE(SUM(si.profit_amount) / NULLIF(COUNT(DISTINCT s.id), 0), 0),
				COALESCE(SUM(si.quantity), 0)
			FROM sales s
			JOIN sale_items si ON si.sale_id = s.id
			JOIN items i ON i.id = si.item_id
			LEFT JOIN categories c ON c.id = i.category_id
			WHERE %s
			GROUP BY c.name, c.color
			ORDER BY 5 DESC`, where)
	} else {
		expr, ok := profitGroupExpr[groupBy]
		if !ok {
			expr = profitGroupExpr["month"]
		}
		query = fmt.Sprintf(`
			SELECT %s,
				COUNT(DISTINCT s.id),
				COALESCE(SUM(si.total_price), 0),
				COALESCE(SUM(si.profit_amount), 0),
				COALESCE(SUM(si.profit_amount) / NULLIF(COUNT(DISTINCT s.id), 0), 0),
				COALESCE(SUM(si.quantity), 0)
			FROM sales s
			JOIN sale_items si ON si.sale_id = s.id
			WHERE %s
			GROUP BY 1
			ORDER BY 1`, expr, where)
	}

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("profit analysis: %w", err)
	}
	defer rows.Close()

	var list []repository.ProfitRow
	for rows.Next() {
		var row repository.ProfitRow
		var err error
		if withColor {
			err = rows.Scan(&row.Period, &row.PeriodColor, &row.TotalSales,
				&row.TotalRevenue, &row.TotalProfit, &row.AvgProfitPerSale, &row.TotalItemsSold)
		} else {
			err = rows.Scan(&row.Period, &row.TotalSales,
				&row.TotalRevenue, &row.TotalProfit, &row.AvgProfitPerSale, &row.TotalItemsSold)
		}
		if err != nil {
			return nil, fmt.Errorf("scan profit row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// lowStockSelect dataset del reporte de stock bajo.
const lowStockSelect = `
	SELECT i.id, i.name, i.upc, i.sku, c.name AS category_name,
		i.quantity_in_stock, i.min_stock_level,
		(i.min_stock_level - i.quantity_in_stock) AS units_below_minimum,
		i.location
	FROM items i
	LEFT JOIN categories c ON c.id = i.category_id`

// LowStockReport artículos en o bajo el umbral. Con threshold explícito se
// compara contra ese valor en lugar del mínimo de cada artículo.
func (r *ReportRepo) LowStockReport(ctx context.Context, threshold *int) (*repository.RowSet, error) {
	var (
		query string
		args  []any
	)
	if threshold != nil {
		query = lowStockSelect + ` WHERE i.is_active = true AND i.quantity_in_stock <= $1 ORDER BY i.quantity_in_stock ASC`
		args = append(args, *threshold)
	} else {
		query = lowStockSelect + ` WHERE i.is_active = true AND i.quantity_in_stock <= i.min_stock_level ORDER BY i.quantity_in_stock ASC`
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("low stock report: %w", err)
	}
	defer rows.Close()
	return rowSetFromRows(rows)
}

// overstockedSelect dataset del reporte de sobrestock.
const overstockedSelect = `
	SELECT i.id, i.name, i.upc, i.sku, c.name AS category_name,
		i.quantity_in_stock, i.max_stock_level,
		(i.quantity_in_stock - i.max_stock_level) AS units_above_maximum,
		i.location
	FROM items i
	LEFT JOIN categories c ON c.id = i.category_id`

// OverstockedReport artículos por encima de su máximo configurado. Aquí (como
// en la alerta, y a diferencia del filtro del listado) se exige max_stock_level no nulo.
func (r *ReportRepo) OverstockedReport(ctx context.Context, threshold *int) (*repository.RowSet, error) {
	var (
		query string
		args  []any
	)
	if threshold != nil {
		query = overstockedSelect + ` WHERE i.is_active = true AND i.max_stock_level IS NOT NULL AND i.quantity_in_stock >= $1 ORDER BY i.quantity_in_stock DESC`
		args = append(args, *threshold)
	} else {
		query = overstockedSelect + ` WHERE i.is_active = true AND i.max_stock_level IS NOT NULL AND i.quantity_in_stock >= i.max_stock_level ORDER BY i.quantity_in_stock DESC`
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("overstocked report: %w", err)
	}
	defer rows.Close()
	return rowSetFromRows(rows)
}

// SalesPerformance desempeño por periodo, con rango de fechas explícito opcional.
func (r *ReportRepo) SalesPerformance(ctx context.Context, start, end *time.Time, groupBy string) ([]repository.PerformanceRow, error) {
	expr, ok := profitGroupExpr[groupBy]
	if !ok {
		expr = profitGroupExpr["day"]
	}

	conds := []string{fmt.Sprintf("s.status = '%s'", entity.SaleStatusCompleted)}
	var args []any
	if start != nil {
		args = append(args, *start)
		conds = append(conds, fmt.Sprintf("s.sale_date >= $%d", len(args)))
	}
	if end != nil {
		args = append(args, *end)
		conds = append(conds, fmt.Sprintf("s.sale_date <= $%d", len(args)))
	}

	query := fmt.Sprintf(`
		SELECT %s,
			COUNT(DISTINCT s.id),
			COALESCE(SUM(si.quantity), 0),
			COALESCE(SUM(si.total_price), 0),
			COALESCE(SUM(si.profit_amount), 0),
			COALESCE(SUM(si.total_price) / NULLIF(COUNT(DISTINCT s.id), 0), 0),
			COALESCE(SUM(si.profit_amount) / NULLIF(COUNT(DISTINCT s.id), 0), 0)
		FROM sales s
		JOIN sale_items si ON si.sale_id = s.id
		WHERE %s
		GROUP BY 1
		ORDER BY 1`, expr, strings.Join(conds, " AND "))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sales performance: %w", err)
	}
	defer rows.Close()

	var list []repository.PerformanceRow
	for rows.Next() {
		var row repository.PerformanceRow
		if err := rows.Scan(
			&row.Period, &row.TotalSales, &row.TotalItemsSold, &row.TotalRevenue,
			&row.TotalProfit, &row.AvgSaleValue, &row.AvgProfitPerSale,
		); err != nil {
			return nil, fmt.Errorf("scan performance row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Export devuelve el dataset plano del tipo de reporte pedido.
func (r *ReportRepo) Export(ctx context.Context, reportType string) (*repository.RowSet, error) {
	var query string
	switch reportType {
	case "inventory":
		query = inventorySummarySelect + ` WHERE i.is_active = true ORDER BY i.name ASC`
	case "sales":
		query = fmt.Sprintf(`
			SELECT s.id, s.sale_date, s.status, c.name AS customer_name,
				i.name AS item_name, i.upc, si.quantity, si.sale_price,
				si.cost_at_sale, si.total_price, si.profit_amount
			FROM sales s
			LEFT JOIN customers c ON c.id = s.customer_id
			JOIN sale_items si ON si.sale_id = s.id
			JOIN items i ON i.id = si.item_id
			WHERE s.status = '%s'
			ORDER BY s.sale_date DESC`, entity.SaleStatusCompleted)
	case "profit":
		query = fmt.Sprintf(`
			SELECT TO_CHAR(s.sale_date, 'YYYY-MM') AS period,
				COUNT(DISTINCT s.id) AS total_sales,
				COALESCE(SUM(si.total_price), 0) AS total_revenue,
				COALESCE(SUM(si.profit_amount), 0) AS total_profit,
				COALESCE(SUM(si.quantity), 0) AS total_items_sold
			FROM sales s
			JOIN sale_items si ON si.sale_id = s.id
			WHERE s.status = '%s'
			GROUP BY 1
			ORDER BY 1`, entity.SaleStatusCompleted)
	case "low-stock":
		return r.LowStockReport(ctx, nil)
	case "overstocked":
		return r.OverstockedReport(ctx, nil)
	default:
		return nil, domain.ErrInvalidInput
	}

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", reportType, err)
	}
	defer rows.Close()
	return rowSetFromRows(rows)
}

// Custom ejecuta un SELECT arbitrario (ya filtrado por el caso de uso) con
// parámetros posicionales.
func (r *ReportRepo) Custom(ctx context.Context, query string, params []any) (*repository.RowSet, error) {
	rows, err := r.q.Query(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("custom report: %w", err)
	}
	defer rows.Close()
	return rowSetFromRows(rows)
}

// rowSetFromRows materializa el resultado con el orden de columnas del statement.
func rowSetFromRows(rows pgx.Rows) (*repository.RowSet, error) {
	fds := rows.FieldDescriptions()
	cols := make([]string, len(fds))
	for i, fd := range fds {
		cols[i] = string(fd.Name)
	}
	rs := &repository.RowSet{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		row := make([]any, len(vals))
		copy(row, vals)
		rs.Rows = append(rs.Rows, row)
	}
	return rs, rows.Err()
}
