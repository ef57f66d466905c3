package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/resellhub/reseller-api/internal/application/dto"
	"github.com/resellhub/reseller-api/internal/application/usecase"
	"github.com/resellhub/reseller-api/internal/domain"
	"github.com/resellhub/reseller-api/internal/domain/entity"
)

func newSaleUC(items *fakeItemRepo, sales *fakeSaleRepo) (*usecase.SaleUseCase, *fakeTxRunner) {
	tx := &fakeTxRunner{repos: usecase.TxRepos{Items: items, Sales: sales}}
	return usecase.NewSaleUseCase(sales, tx), tx
}

func TestSaleCreate_CongelaCostoYDescuentaStock(t *testing.T) {
	items := newFakeItemRepo()
	items.costs["i1"] = decimal.RequireFromString("10.00")
	items.costs["i2"] = decimal.RequireFromString("4.50")
	items.quantities["i1"] = 20
	items.quantities["i2"] = 8
	sales := newFakeSaleRepo()
	uc, tx := newSaleUC(items, sales)

	out, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		SaleDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Items: []dto.SaleLineRequest{
			{ItemID: "i1", Quantity: 2, SalePrice: decimal.RequireFromString("25.00")},
			{ItemID: "i2", Quantity: 3, SalePrice: decimal.RequireFromString("6.00")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, tx.committed)

	require.Len(t, sales.headers, 1)
	require.Len(t, sales.lines, 2)

	// Línea 1: costo congelado 10.00, total 50.00, utilidad (25-10)*2 = 30.00
	l1 := sales.lines[0]
	assert.Equal(t, "10", l1.CostAtSale.String())
	assert.Equal(t, "50", l1.TotalPrice.String())
	assert.Equal(t, "30", l1.ProfitAmount.String())

	// Línea 2: costo congelado 4.50, total 18.00, utilidad (6-4.5)*3 = 4.50
	l2 := sales.lines[1]
	assert.Equal(t, "4.5", l2.CostAtSale.String())
	assert.Equal(t, "18", l2.TotalPrice.String())
	assert.Equal(t, "4.5", l2.ProfitAmount.String())

	// Stock descontado con signo negativo.
	assert.Equal(t, 18, items.quantities["i1"])
	assert.Equal(t, 5, items.quantities["i2"])

	// Total de la venta = suma de líneas, tanto en DB como en la respuesta.
	assert.Equal(t, "68", sales.totals[out.ID].String())
	assert.Equal(t, "68", out.TotalAmount.String())
	assert.Equal(t, entity.SaleStatusCompleted, out.Status)
}

// Una línea con artículo inexistente revierte la venta completa: la cabecera
// y las líneas previas no sobreviven al rollback.
func TestSaleCreate_LineaInvalidaRevierteTodo(t *testing.T) {
	items := newFakeItemRepo()
	items.costs["i1"] = decimal.RequireFromString("10.00")
	items.quantities["i1"] = 20
	sales := newFakeSaleRepo()
	uc, tx := newSaleUC(items, sales)

	_, err := uc.Create(context.Background(), dto.CreateSaleRequest{
		SaleDate: time.Now(),
		Items: []dto.SaleLineRequest{
			{ItemID: "i1", Quantity: 1, SalePrice: decimal.RequireFromString("25.00")},
			{ItemID: "missing", Quantity: 1, SalePrice: decimal.RequireFromString("5.00")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}
