package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/resellhub/reseller-api/internal/application/dto"
	"github.com/resellhub/reseller-api/internal/domain"
	"github.com/resellhub/reseller-api/internal/domain/repository"
)

// deniedKeywords subcadenas prohibidas en el reporte custom. El filtro es
// léxico: basta que la palabra aparezca en cualquier parte del texto para
// rechazar la consulta, aunque sea dentro de un identificador o un literal.
var deniedKeywords = []string{"drop", "delete", "insert", "update", "create", "alter", "truncate"}

// ReportUseCase reportes de solo lectura, dashboard y exportaciones.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// Dashboard arma el resumen lanzando las cuatro consultas en paralelo y
// recogiendo la primera falla.
func (uc *ReportUseCase) Dashboard(ctx context.Context) (*dto.DashboardSummary, error) {
	var (
		inv      repository.InventoryTotals
		lowStock int
		sales    repository.SalesTotals
		topCats  []repository.CategorySales
	)

	errCh := make(chan error, 4)

	go func() {
		var err error
		inv, err = uc.repo.InventoryTotals(ctx)
		errCh <- err
	}()
	go func() {
		var err error
		lowStock, err = uc.repo.LowStockCount(ctx)
		errCh <- err
	}()
	go func() {
		var err error
		sales, err = uc.repo.RecentSalesTotals(ctx, 30)
		errCh <- err
	}()
	go func() {
		var err error
		topCats, err = uc.repo.TopCategories(ctx, 30, 5)
		errCh <- err
	}()

	for i := 0; i < 4; i++ {
		if err := <-errCh; err != nil {
			return nil, err
		}
	}

	cats := make([]dto.TopCategorySales, 0, len(topCats))
	for _, c := range topCats {
		cats = append(cats, dto.TopCategorySales{
			CategoryName:  c.CategoryName,
			CategoryColor: c.CategoryColor,
			SalesCount:    c.SalesCount,
			TotalRevenue:  c.TotalRevenue,
		})
	}

	return &dto.DashboardSummary{
		Inventory: dto.DashboardInventory{
			TotalItems:           inv.TotalItems,
			TotalQuantity:        inv.TotalQuantity,
			TotalCostValue:       inv.TotalCostValue,
			TotalSaleValue:       inv.TotalSaleValue,
			TotalPotentialProfit: inv.TotalPotentialProfit,
		},
		Alerts: dto.DashboardAlerts{LowStock: lowStock},
		Sales: dto.DashboardSales{
			TotalSales:   sales.TotalSales,
			TotalRevenue: sales.TotalRevenue,
			NetRevenue:   sales.NetRevenue,
		},
		TopCategories: cats,
	}, nil
}

// InventorySummary resumen de inventario con filtros y orden de lista cerrada.
func (uc *ReportUseCase) InventorySummary(ctx context.Context, q dto.InventorySummaryQuery) ([]map[string]any, error) {
	rs, err := uc.repo.InventorySummary(ctx, repository.InventorySummaryFilter{
		CategoryID:  q.Category,
		StockStatus: q.StockStatus,
		SortBy:      q.SortBy,
		SortOrder:   q.SortOrder,
	})
	if err != nil {
		return nil, err
	}
	return rs.Maps(), nil
}

// TopSelling ranking de artículos más vendidos en el periodo.
func (uc *ReportUseCase) TopSelling(ctx context.Context, q dto.TopSellingQuery) ([]dto.TopSellingItem, error) {
	rows, err := uc.repo.TopSelling(ctx, repository.TopSellingFilter{
		Period:     q.Period,
		CategoryID: q.Category,
		Limit:      q.Limit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopSellingItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TopSellingItem{
			ID:                r.ItemID,
			Name:              r.Name,
			UPC:               r.UPC,
			CategoryName:      r.CategoryName,
			CategoryColor:     r.CategoryColor,
			TotalSales:        r.TotalSales,
			TotalQuantitySold: r.TotalQuantitySold,
			TotalRevenue:      r.TotalRevenue,
			AvgProfitPerItem:  r.AvgProfitPerItem,
			TotalProfit:       r.TotalProfit,
		})
	}
	return out, nil
}

// ProfitAnalysis utilidad agregada por periodo o por categoría, calculada
// sobre el costo congelado de cada línea vendida.
func (uc *ReportUseCase) ProfitAnalysis(ctx context.Context, q dto.ProfitAnalysisQuery) ([]dto.ProfitAnalysisRow, error) {
	rows, err := uc.repo.ProfitAnalysis(ctx, q.Period, q.GroupBy)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProfitAnalysisRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProfitAnalysisRow{
			Period:           r.Period,
			PeriodColor:      r.PeriodColor,
			TotalSales:       r.TotalSales,
			TotalRevenue:     r.TotalRevenue,
			TotalProfit:      r.TotalProfit,
			AvgProfitPerSale: r.AvgProfitPerSale,
			TotalItemsSold:   r.TotalItemsSold,
		})
	}
	return out, nil
}

// LowStockReport artículos en o bajo el umbral de stock mínimo.
func (uc *ReportUseCase) LowStockReport(ctx context.Context, threshold *int) ([]map[string]any, error) {
	rs, err := uc.repo.LowStockReport(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return rs.Maps(), nil
}

// OverstockedReport artículos por encima del máximo configurado.
func (uc *ReportUseCase) OverstockedReport(ctx context.Context, threshold *int) ([]map[string]any, error) {
	rs, err := uc.repo.OverstockedReport(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return rs.Maps(), nil
}

// SalesPerformance desempeño de ventas agrupado por día, semana o mes.
func (uc *ReportUseCase) SalesPerformance(ctx context.Context, q dto.SalesPerformanceQuery) ([]dto.SalesPerformanceRow, error) {
	rows, err := uc.repo.SalesPerformance(ctx, q.StartDate, q.EndDate, q.GroupBy)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesPerformanceRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesPerformanceRow{
			Period:           r.Period,
			TotalSales:       r.TotalSales,
			TotalItemsSold:   r.TotalItemsSold,
			TotalRevenue:     r.TotalRevenue,
			TotalProfit:      r.TotalProfit,
			AvgSaleValue:     r.AvgSaleValue,
			AvgProfitPerSale: r.AvgProfitPerSale,
		})
	}
	return out, nil
}

// Export devuelve el dataset plano del tipo de reporte pedido. El handler
// decide el formato (json, csv o pdf) sobre este mismo RowSet.
func (uc *ReportUseCase) Export(ctx context.Context, reportType string) (*repository.RowSet, error) {
	return uc.repo.Export(ctx, reportType)
}

// Custom ejecuta un SELECT arbitrario tras pasar el filtro léxico. El texto
// debe empezar con "select" y no contener ninguna palabra de la lista negra.
func (uc *ReportUseCase) Custom(ctx context.Context, in dto.CustomReportRequest) (*dto.CustomReportResponse, error) {
	if err := checkCustomQuery(in.Query); err != nil {
		return nil, err
	}
	rs, err := uc.repo.Custom(ctx, in.Query, in.Params)
	if err != nil {
		return nil, err
	}
	data := rs.Maps()
	return &dto.CustomReportResponse{
		Data:        data,
		RowCount:    len(data),
		Description: in.Description,
		ExecutedAt:  time.Now(),
	}, nil
}

func checkCustomQuery(query string) error {
	trimmed := strings.ToLower(strings.TrimSpace(query))
	if !strings.HasPrefix(trimmed, "select") {
		return domain.ErrForbiddenQuery
	}
	for _, kw := range deniedKeywords {
		if strings.Contains(trimmed, kw) {
			return domain.ErrForbiddenQuery
		}
	}
	return nil
}
