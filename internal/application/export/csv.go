// Package export codifica datasets de reportes para descarga.
//
// El CSV sigue un contrato literal heredado del cliente existente: cabecera
// con los nombres de columna separados por coma, filas con los valores
// separados por coma, y solo los strings que contienen una coma se envuelven
// en comillas dobles (sin escape de comillas embebidas). encoding/csv no puede
// reproducir ese formato, por eso se arma a mano.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/resellhub/reseller-api/internal/domain/repository"
)

// CSV codifica el RowSet con el contrato literal. Un dataset vacío produce
// cadena vacía (no hay primera fila de la que derivar cabeceras).
func CSV(rs *repository.RowSet) string {
	if rs == nil || len(rs.Rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Join(rs.Columns, ","))
	b.WriteByte('\n')

	for i, row := range rs.Rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(formatValue(v))
		}
	}
	return b.String()
}

// formatValue serializa un valor de celda. Solo los strings con coma llevan comillas.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		if strings.Contains(x, ",") {
			return `"` + x + `"`
		}
		return x
	case *string:
		if x == nil {
			return ""
		}
		return formatValue(*x)
	case decimal.Decimal:
		return x.String()
	case time.Time:
		return x.Format(time.RFC3339)
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", x)
	}
}
