package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/resellhub/reseller-api/internal/application/dto"
	"github.com/resellhub/reseller-api/internal/application/usecase"
	"github.com/resellhub/reseller-api/internal/domain"
	"github.com/resellhub/reseller-api/internal/domain/repository"
)

func TestDashboard_ArmaElResumen(t *testing.T) {
	color := "#ff0000"
	repo := &fakeReportRepo{
		inventory: repository.InventoryTotals{
			TotalItems:     12,
			TotalQuantity:  340,
			TotalCostValue: decimal.RequireFromString("1500.00"),
		},
		lowStock: 3,
		sales: repository.SalesTotals{
			TotalSales:   7,
			TotalRevenue: decimal.RequireFromString("420.00"),
		},
		topCats: []repository.CategorySales{
			{CategoryName: "Cables", CategoryColor: &color, SalesCount: 5, TotalRevenue: decimal.RequireFromString("300.00")},
		},
	}
	uc := usecase.NewReportUseCase(repo)

	out, err := uc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, out.Inventory.TotalItems)
	assert.Equal(t, 3, out.Alerts.LowStock)
	assert.Equal(t, 7, out.Sales.TotalSales)
	require.Len(t, out.TopCategories, 1)
	assert.Equal(t, "Cables", out.TopCategories[0].CategoryName)
}

func TestDashboard_PropagaElError(t *testing.T) {
	repo := &fakeReportRepo{err: assert.AnError}
	uc := usecase.NewReportUseCase(repo)

	_, err := uc.Dashboard(context.Background())
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro léxico del reporte custom
// ──────────────────────────────────────────────────────────────────────────────

func customUC(t *testing.T) (*usecase.ReportUseCase, *fakeReportRepo) {
	t.Helper()
	repo := &fakeReportRepo{rowSet: &repository.RowSet{
		Columns: []string{"name"},
		Rows:    [][]any{{"Widget"}},
	}}
	return usecase.NewReportUseCase(repo), repo
}

func TestCustom_SelectPermitido(t *testing.T) {
	uc, repo := customUC(t)

	out, err := uc.Custom(context.Background(), dto.CustomReportRequest{
		Query:  "SELECT name FROM items WHERE quantity_in_stock > $1",
		Params: []any{5},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.RowCount)
	assert.Equal(t, []any{5}, repo.customArgs)
}

func TestCustom_AceptaEspaciosYMayusculas(t *testing.T) {
	uc, _ := customUC(t)

	_, err := uc.Custom(context.Background(), dto.CustomReportRequest{
		Query: "   SeLeCt 1",
	})
	assert.NoError(t, err)
}

func TestCustom_RechazaLoQueNoEmpiezaConSelect(t *testing.T) {
	uc, repo := customUC(t)

	for _, q := range []string{
		"WITH x AS (SELECT 1) SELECT * FROM x",
		"EXPLAIN SELECT 1",
		"",
	} {
		_, err := uc.Custom(context.Background(), dto.CustomReportRequest{Query: q})
		assert.ErrorIs(t, err, domain.ErrForbiddenQuery, "query: %q", q)
	}
	assert.Empty(t, repo.customQuery, "ninguna consulta rechazada llega a la base")
}

func TestCustom_RechazaPalabrasProhibidas(t *testing.T) {
	uc, _ := customUC(t)

	for _, q := range []string{
		"SELECT 1; DROP TABLE items",
		"select * from items where name = 'delete me'",
		"SELECT truncate_label FROM items",
	} {
		_, err := uc.Custom(context.Background(), dto.CustomReportRequest{Query: q})
		assert.ErrorIs(t, err, domain.ErrForbiddenQuery, "query: %q", q)
	}
}

// El filtro es de subcadenas: mencionar la columna updated_at contiene la
// palabra "update" y el SELECT legítimo se rechaza igual.
func TestCustom_SubcadenaRechazaColumnasLegitimas(t *testing.T) {
	uc, _ := customUC(t)

	_, err := uc.Custom(context.Background(), dto.CustomReportRequest{
		Query: "SELECT updated_at FROM items",
	})
	assert.ErrorIs(t, err, domain.ErrForbiddenQuery)
}
