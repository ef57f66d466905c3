package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/resellhub/reseller-api/internal/application/dto"
	"github.com/resellhub/reseller-api/internal/application/ports"
	"github.com/resellhub/reseller-api/internal/application/usecase"
	"github.com/resellhub/reseller-api/internal/domain/entity"
	"github.com/resellhub/reseller-api/internal/domain/repository"
	apihttp "github.com/resellhub/reseller-api/internal/interfaces/http"
)

// stubItemRepo respuestas enlatadas para probar los handlers de artículos.
type stubItemRepo struct {
	byID     *entity.ItemWithCategory
	created  []*entity.Item
	listRows []entity.ItemWithCategory
	total    int
}

func (s *stubItemRepo) Create(_ context.Context, item *entity.Item) error {
	s.created = append(s.created, item)
	return nil
}

func (s *stubItemRepo) GetByID(_ context.Context, _ string) (*entity.ItemWithCategory, error) {
	return s.byID, nil
}

func (s *stubItemRepo) GetByUPC(_ context.Context, _ string) (*entity.ItemWithCategory, error) {
	return s.byID, nil
}

func (s *stubItemRepo) HasUPCOrSKUCollision(_ context.Context, _, _ *string, _ string) (bool, error) {
	return false, nil
}

func (s *stubItemRepo) List(_ context.Context, _ repository.ItemFilter) ([]entity.ItemWithCategory, error) {
	return s.listRows, nil
}

func (s *stubItemRepo) Count(_ context.Context, _ repository.ItemFilter) (int, error) {
	return s.total, nil
}

func (s *stubItemRepo) Update(_ context.Context, _ string, _ repository.ItemChanges, _ time.Time) (*entity.Item, error) {
	return nil, nil
}

func (s *stubItemRepo) SoftDelete(_ context.Context, _ string, _ time.Time) (bool, error) {
	return false, nil
}

func (s *stubItemRepo) AdjustQuantity(_ context.Context, _ string, _ int, _ time.Time) (int, bool, error) {
	return 0, false, nil
}

func (s *stubItemRepo) GetCostForUpdate(_ context.Context, _ string) (decimal.Decimal, bool, error) {
	return decimal.Zero, false, nil
}

func (s *stubItemRepo) LowStock(_ context.Context) ([]entity.ItemWithCategory, error) {
	return s.listRows, nil
}

func (s *stubItemRepo) Overstocked(_ context.Context) ([]entity.ItemWithCategory, error) {
	return s.listRows, nil
}

type noopTxRunner struct{}

func (noopTxRunner) Run(_ context.Context, fn func(usecase.TxRepos) error) error {
	return fn(usecase.TxRepos{})
}

type noopPublisher struct{}

func (noopPublisher) Publish(_ context.Context, _ ports.ChangeEvent) {}

// itemApp registra las rutas de artículos igual que el router principal.
func itemApp(repo *stubItemRepo) *fiber.App {
	h := apihttp.NewItemHandler(usecase.NewItemUseCase(repo, noopTxRunner{}, noopPublisher{}))

	app := fiber.New()
	items := app.Group("/api/items")
	items.Get("/alerts/low-stock", h.LowStock)
	items.Get("/alerts/overstocked", h.Overstocked)
	items.Get("/search/upc/:upc", h.GetByUPC)
	items.Post("/bulk-update", h.BulkUpdate)
	items.Get("/", h.List)
	items.Post("/", h.Create)
	items.Get("/:id", h.GetByID)
	items.Put("/:id", h.Update)
	items.Delete("/:id", h.Delete)
	return app
}

func decodeJSON(t *testing.T, body io.Reader, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(body).Decode(dst))
}

func TestItemCreate_CuerpoInvalidoReportaTodosLosCampos(t *testing.T) {
	app := itemApp(&stubItemRepo{})

	req := httptest.NewRequest("POST", "/api/items", strings.NewReader(`{"image_url":"no-es-url"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ValidationErrorResponse
	decodeJSON(t, resp.Body, &out)
	assert.Equal(t, "validación fallida", out.Error)

	fields := make([]string, 0, len(out.Errors))
	for _, fe := range out.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "image_url")
}

func TestItemCreate_Valido(t *testing.T) {
	repo := &stubItemRepo{}
	app := itemApp(repo)

	body := `{"name":"Widget","cost":10.00,"sale_price":19.99,"quantity_in_stock":5}`
	req := httptest.NewRequest("POST", "/api/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out dto.ItemResponse
	decodeJSON(t, resp.Body, &out)
	assert.Equal(t, "Widget", out.Name)
	assert.NotEmpty(t, out.ID)
	assert.True(t, out.IsActive)

	require.Len(t, repo.created, 1)
	assert.Equal(t, 5, repo.created[0].QuantityInStock)
}

func TestItemGetByID_NoExiste(t *testing.T) {
	app := itemApp(&stubItemRepo{})

	req := httptest.NewRequest("GET", "/api/items/00000000-0000-0000-0000-000000000000", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var out dto.ErrorResponse
	decodeJSON(t, resp.Body, &out)
	assert.Equal(t, "artículo no encontrado", out.Error)
}

func TestItemGetByUPC_RutaDeBusqueda(t *testing.T) {
	upc := "000111222333"
	repo := &stubItemRepo{
		byID: &entity.ItemWithCategory{Item: entity.Item{ID: "i1", Name: "Widget", UPC: &upc, IsActive: true}},
	}
	app := itemApp(repo)

	req := httptest.NewRequest("GET", "/api/items/search/upc/000111222333", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.ItemResponse
	decodeJSON(t, resp.Body, &out)
	assert.Equal(t, "Widget", out.Name)
	require.NotNil(t, out.UPC)
	assert.Equal(t, upc, *out.UPC)
}

func TestItemList_StockStatusInvalido(t *testing.T) {
	app := itemApp(&stubItemRepo{})

	req := httptest.NewRequest("GET", "/api/items?stockStatus=bogus", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ValidationErrorResponse
	decodeJSON(t, resp.Body, &out)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "stockStatus", out.Errors[0].Field)
}

func TestItemList_SobreConPaginacion(t *testing.T) {
	repo := &stubItemRepo{
		listRows: []entity.ItemWithCategory{
			{Item: entity.Item{ID: "i1", Name: "Cable HDMI", IsActive: true}},
		},
		total: 41,
	}
	app := itemApp(repo)

	req := httptest.NewRequest("GET", "/api/items?page=2&limit=20", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.ItemListResponse
	decodeJSON(t, resp.Body, &out)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Cable HDMI", out.Items[0].Name)
	assert.Equal(t, 41, out.Pagination.Total)
	assert.Equal(t, 3, out.Pagination.TotalPages)
	assert.True(t, out.Pagination.HasNextPage)
	assert.True(t, out.Pagination.HasPrevPage)
}
