package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/resellhub/reseller-api/internal/domain/repository"
)

func TestBuildItemWhere_SinFiltros(t *testing.T) {
	where, args := buildItemWhere(repository.ItemFilter{})
	assert.Equal(t, "WHERE i.is_active = true", where)
	assert.Empty(t, args)
}

func TestBuildItemWhere_Busqueda(t *testing.T) {
	where, args := buildItemWhere(repository.ItemFilter{Search: "cable"})
	assert.Contains(t, where, "i.name ILIKE $1")
	assert.Contains(t, where, "i.upc ILIKE $1")
	assert.Contains(t, where, "i.sku ILIKE $1")
	assert.Equal(t, []any{"%cable%"}, args)
}

func TestBuildItemWhere_CategoriaYEstado(t *testing.T) {
	where, args := buildItemWhere(repository.ItemFilter{
		CategoryID:  "cat-1",
		StockStatus: "low",
	})
	assert.Contains(t, where, "i.category_id = $1")
	assert.Contains(t, where, "i.quantity_in_stock <= i.min_stock_level")
	assert.Equal(t, []any{"cat-1"}, args)
}

// El listado clasifica overstocked con COALESCE: sin máximo configurado el
// artículo nunca entra en ese estado por este filtro.
func TestBuildItemWhere_OverstockedUsaCoalesce(t *testing.T) {
	where, _ := buildItemWhere(repository.ItemFilter{StockStatus: "overstocked"})
	assert.Contains(t, where, "COALESCE(i.max_stock_level, 999999)")
}

func TestItemOrderBy_ColumnasPermitidas(t *testing.T) {
	assert.Equal(t, "ORDER BY i.name ASC", itemOrderBy("name", "asc"))
	assert.Equal(t, "ORDER BY i.created_at DESC", itemOrderBy("created_at", "desc"))
	assert.Equal(t, "ORDER BY (i.sale_price - i.cost) DESC", itemOrderBy("profit_margin", "desc"))
}

// Un token fuera de la lista cae al orden por defecto, nunca al SQL.
func TestItemOrderBy_TokenDesconocidoCaeAlDefecto(t *testing.T) {
	assert.Equal(t, "ORDER BY i.name ASC", itemOrderBy("name; DROP TABLE items", "asc"))
	assert.Equal(t, "ORDER BY i.quantity_in_stock ASC", itemOrderBy("quantity_in_stock", "asc; DROP"))
}
