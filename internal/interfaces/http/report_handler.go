package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/resellhub/reseller-api/internal/application/dto"
	"github.com/resellhub/reseller-api/internal/application/export"
	"github.com/resellhub/reseller-api/internal/application/usecase"
	"github.com/resellhub/reseller-api/internal/domain/repository"
)

// exportableReports tipos de reporte con dataset plano exportable.
var exportableReports = map[string]bool{
	"inventory":   true,
	"sales":       true,
	"profit":      true,
	"low-stock":   true,
	"overstocked": true,
}

// ReportPDFGenerator genera la versión PDF de un dataset exportable.
type ReportPDFGenerator interface {
	Generate(title string, rs *repository.RowSet) ([]byte, error)
}

// ReportHandler maneja las peticiones HTTP de reportes, dashboard y exportaciones.
type ReportHandler struct {
	uc  *usecase.ReportUseCase
	pdf ReportPDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase, pdf ReportPDFGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf}
}

// Dashboard godoc
// @Summary      Resumen del dashboard
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// InventorySummary godoc
// @Summary      Resumen de inventario con métricas derivadas
// @Tags         reports
// @Produce      json
// @Param        category     query  string  false  "ID de categoría"
// @Param        stockStatus  query  string  false  "low | normal | overstocked"
// @Param        sortBy       query  string  false  "name | cost | sale_price | profit_margin | quantity_in_stock"
// @Param        sortOrder    query  string  false  "asc | desc"
// @Success      200  {array}  map[string]any
// @Router       /api/reports/inventory-summary [get]
func (h *ReportHandler) InventorySummary(c *fiber.Ctx) error {
	var q dto.InventorySummaryQuery
	if !parseQuery(c, &q) {
		return nil
	}
	out, err := h.uc.InventorySummary(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopSelling godoc
// @Summary      Artículos más vendidos
// @Tags         reports
// @Produce      json
// @Param        period    query  string  false  "7d | 30d | 90d | 1y | all"  default(30d)
// @Param        category  query  string  false  "ID de categoría"
// @Param        limit     query  int     false  "Máximo de filas"  default(20)
// @Success      200  {array}  dto.TopSellingItem
// @Router       /api/reports/top-selling [get]
func (h *ReportHandler) TopSelling(c *fiber.Ctx) error {
	var q dto.TopSellingQuery
	if !parseQuery(c, &q) {
		return nil
	}
	out, err := h.uc.TopSelling(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ProfitAnalysis godoc
// @Summary      Análisis de utilidad por periodo o categoría
// @Tags         reports
// @Produce      json
// @Param        period   query  string  false  "7d | 30d | 90d | 1y | all"      default(30d)
// @Param        groupBy  query  string  false  "day | week | month | category"  default(month)
// @Success      200  {array}  dto.ProfitAnalysisRow
// @Router       /api/reports/profit-analysis [get]
func (h *ReportHandler) ProfitAnalysis(c *fiber.Ctx) error {
	var q dto.ProfitAnalysisQuery
	if !parseQuery(c, &q) {
		return nil
	}
	out, err := h.uc.ProfitAnalysis(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Reporte de stock bajo
// @Tags         reports
// @Produce      json
// @Param        threshold  query  int  false  "Umbral explícito (por defecto el mínimo de cada artículo)"
// @Success      200  {array}  map[string]any
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	var q dto.ThresholdQuery
	if !parseQuery(c, &q) {
		return nil
	}
	out, err := h.uc.LowStockReport(c.Context(), q.Threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Overstocked godoc
// @Summary      Reporte de sobrestock
// @Tags         reports
// @Produce      json
// @Param        threshold  query  int  false  "Umbral explícito (por defecto el máximo de cada artículo)"
// @Success      200  {array}  map[string]any
// @Router       /api/reports/overstocked [get]
func (h *ReportHandler) Overstocked(c *fiber.Ctx) error {
	var q dto.ThresholdQuery
	if !parseQuery(c, &q) {
		return nil
	}
	out, err := h.uc.OverstockedReport(c.Context(), q.Threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesPerformance godoc
// @Summary      Desempeño de ventas por periodo
// @Tags         reports
// @Produce      json
// @Param        startDate  query  string  false  "Fecha inicial (RFC3339)"
// @Param        endDate    query  string  false  "Fecha final (RFC3339)"
// @Param        groupBy    query  string  false  "day | week | month"  default(day)
// @Success      200  {array}  dto.SalesPerformanceRow
// @Router       /api/reports/sales-performance [get]
func (h *ReportHandler) SalesPerformance(c *fiber.Ctx) error {
	var q dto.SalesPerformanceQuery
	if !parseQuery(c, &q) {
		return nil
	}
	out, err := h.uc.SalesPerformance(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Custom godoc
// @Summary      Reporte custom (solo SELECT)
// @Description  Ejecuta un SELECT arbitrario con parámetros posicionales tras
// @Description  un filtro léxico de palabras prohibidas.
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomReportRequest  true  "Consulta y parámetros"
// @Success      200   {object}  dto.CustomReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/custom [post]
func (h *ReportHandler) Custom(c *fiber.Ctx) error {
	var in dto.CustomReportRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Custom(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar un reporte en json, csv o pdf
// @Tags         reports
// @Produce      json
// @Produce      text/csv
// @Produce      application/pdf
// @Param        reportType  path   string  true   "inventory | sales | profit | low-stock | overstocked"
// @Param        format      query  string  false  "json | csv | pdf"  default(json)
// @Success      200  {object}  dto.ExportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/export/{reportType} [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	reportType := c.Params("reportType")
	if !exportableReports[reportType] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "tipo de reporte desconocido"})
	}
	var q dto.ExportQuery
	if !parseQuery(c, &q) {
		return nil
	}

	rs, err := h.uc.Export(c.Context(), reportType)
	if err != nil {
		return respondError(c, err)
	}

	switch q.Format {
	case "csv":
		filename := fmt.Sprintf("%s-%s.csv", reportType, time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.SendString(export.CSV(rs))
	case "pdf":
		doc, err := h.pdf.Generate(reportType, rs)
		if err != nil {
			return respondError(c, err)
		}
		filename := fmt.Sprintf("%s-%s.pdf", reportType, time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
		return c.Send(doc)
	default:
		data := rs.Maps()
		return c.JSON(dto.ExportResponse{
			ReportType: reportType,
			Data:       data,
			RowCount:   len(data),
			ExportedAt: time.Now(),
		})
	}
}
