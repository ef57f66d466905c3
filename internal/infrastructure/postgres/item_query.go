package postgres

import (
	"fmt"
	"strings"

	"github.com/resellhub/reseller-api/internal/domain/entity"
	"github.com/resellhub/reseller-api/internal/domain/repository"
)

// itemSortColumns columnas permitidas en el ORDER BY del listado. El SQL solo
// interpola tokens de esta tabla; cualquier otro valor cae al orden por defecto.
var itemSortColumns = map[string]string{
	"name":              "i.name",
	"cost":              "i.cost",
	"sale_price":        "i.sale_price",
	"profit_margin":     "(i.sale_price - i.cost)",
	"quantity_in_stock": "i.quantity_in_stock",
	"created_at":        "i.created_at",
}

// buildItemWhere arma el WHERE del listado con parámetros posicionales.
// Siempre incluye el filtro de artículos activos.
func buildItemWhere(f repository.ItemFilter) (string, []any) {
	conds := []string{"i.is_active = true"}
	var args []any

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(i.name ILIKE $%d OR i.description ILIKE $%d OR i.upc ILIKE $%d OR i.sku ILIKE $%d)",
			n, n, n, n))
	}
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("i.category_id = $%d", len(args)))
	}

	// El listado clasifica overstocked con COALESCE(max, 999999): un artículo
	// sin máximo configurado nunca entra en ese estado por esta vía.
	switch f.StockStatus {
	case entity.StockStatusLow:
		conds = append(conds, "i.quantity_in_stock <= i.min_stock_level")
	case entity.StockStatusNormal:
		conds = append(conds, "i.quantity_in_stock > i.min_stock_level AND i.quantity_in_stock < COALESCE(i.max_stock_level, 999999)")
	case entity.StockStatusOverstocked:
		conds = append(conds, "i.quantity_in_stock >= COALESCE(i.max_stock_level, 999999)")
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

// itemOrderBy resuelve el ORDER BY desde las listas cerradas de columna y dirección.
func itemOrderBy(sortBy, sortOrder string) string {
	col, ok := itemSortColumns[sortBy]
	if !ok {
		col = "i.name"
	}
	dir := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		dir = "DESC"
	}
	return "ORDER BY " + col + " " + dir
}
