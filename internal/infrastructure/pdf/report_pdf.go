// Package pdf genera la versión imprimible de los reportes exportables:
// una página A4 con título, fecha de generación y la tabla del dataset.
package pdf

import (
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/resellhub/reseller-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// maxPDFColumns límite de columnas que caben legibles en una A4 vertical.
const maxPDFColumns = 8

// ReportGenerator genera PDFs de reportes usando Maroto v2.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator { return &ReportGenerator{} }

// Generate arma el PDF del dataset y devuelve sus bytes. Si el dataset tiene
// más columnas de las que caben, se truncan por la derecha.
func (g *ReportGenerator) Generate(title string, rs *repository.RowSet) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	cols := rs.Columns
	if len(cols) > maxPDFColumns {
		cols = cols[:maxPDFColumns]
	}
	if len(cols) > 0 {
		m.AddRows(tableHeaderRow(cols))
		for _, r := range rs.Rows {
			m.AddRows(tableDataRow(r, len(cols)))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(title string) core.Row {
	generated := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New(strings.ToUpper(title), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generated, props.Text{
				Size: 8, Top: 4, Color: colorGray, Align: align.Right,
			}),
		),
	)
}

func tableHeaderRow(cols []string) core.Row {
	width := columnWidth(len(cols))
	r := row.New(7)
	for _, name := range cols {
		r.Add(col.New(width).Add(
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
		))
	}
	return r
}

func tableDataRow(values []any, n int) core.Row {
	width := columnWidth(n)
	r := row.New(6)
	for i := 0; i < n && i < len(values); i++ {
		r.Add(col.New(width).Add(
			text.New(formatCell(values[i]), props.Text{Size: 8}),
		))
	}
	return r
}

// columnWidth reparte la grilla de 12 de Maroto entre las columnas.
func columnWidth(n int) int {
	if n <= 0 {
		return 12
	}
	w := 12 / n
	if w < 1 {
		w = 1
	}
	return w
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case decimal.Decimal:
		return x.StringFixed(2)
	case time.Time:
		return x.Format("2006-01-02")
	default:
		return fmt.Sprintf("%v", x)
	}
}
