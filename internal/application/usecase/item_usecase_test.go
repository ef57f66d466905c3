package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/resellhub/reseller-api/internal/application/dto"
	"github.com/resellhub/reseller-api/internal/application/ports"
	"github.com/resellhub/reseller-api/internal/application/usecase"
	"github.com/resellhub/reseller-api/internal/domain"
	"github.com/resellhub/reseller-api/internal/domain/entity"
)

func newItemUC(repo *fakeItemRepo) (*usecase.ItemUseCase, *fakeTxRunner, *fakePublisher) {
	tx := &fakeTxRunner{repos: usecase.TxRepos{Items: repo}}
	pub := &fakePublisher{}
	return usecase.NewItemUseCase(repo, tx, pub), tx, pub
}

func TestItemCreate_PublicaEvento(t *testing.T) {
	repo := newFakeItemRepo()
	uc, _, pub := newItemUC(repo)

	out, err := uc.Create(context.Background(), dto.CreateItemRequest{
		Name:      "Widget",
		Cost:      decimal.RequireFromString("10.00"),
		SalePrice: decimal.RequireFromString("25.00"),
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.IsActive)
	assert.NotEmpty(t, out.ID)
	require.Len(t, repo.created, 1)
	require.Len(t, pub.events, 1)
	assert.Equal(t, ports.EventItemCreated, pub.events[0].Type)
}

func TestItemCreate_ColisionUPC(t *testing.T) {
	repo := newFakeItemRepo()
	repo.collision = true
	uc, _, pub := newItemUC(repo)

	upc := "012345678905"
	_, err := uc.Create(context.Background(), dto.CreateItemRequest{
		Name: "Widget",
		UPC:  &upc,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, repo.created, "no debe insertarse nada tras la colisión")
	assert.Empty(t, pub.events, "una mutación fallida no publica eventos")
}

// Actualización parcial: solo los campos presentes llegan al UPDATE; lo
// omitido va como nil y updated_at se estampa siempre.
func TestItemUpdate_SoloCambiaLosCamposPresentes(t *testing.T) {
	repo := newFakeItemRepo()
	repo.items["i1"] = &entity.ItemWithCategory{Item: entity.Item{ID: "i1", Name: "Original"}}

	name := "Renombrado"
	cost := decimal.RequireFromString("12.50")
	repo.updated = &entity.Item{ID: "i1", Name: name, Cost: cost}
	uc, _, pub := newItemUC(repo)

	out, err := uc.Update(context.Background(), "i1", dto.UpdateItemRequest{
		Name: &name,
		Cost: &cost,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	ch := repo.changes
	require.NotNil(t, ch.Name)
	assert.Equal(t, "Renombrado", *ch.Name)
	require.NotNil(t, ch.Cost)
	assert.True(t, ch.Cost.Equal(cost))

	assert.Nil(t, ch.Description)
	assert.Nil(t, ch.UPC)
	assert.Nil(t, ch.SKU)
	assert.Nil(t, ch.CategoryID)
	assert.Nil(t, ch.SalePrice)
	assert.Nil(t, ch.QuantityInStock)
	assert.Nil(t, ch.MinStockLevel)
	assert.Nil(t, ch.MaxStockLevel)
	assert.Nil(t, ch.Location)
	assert.Nil(t, ch.ConditionNotes)
	assert.Nil(t, ch.Tags)
	assert.Nil(t, ch.ImageURL)

	assert.False(t, repo.changesAt.IsZero(), "updated_at se estampa en toda actualización")

	require.Len(t, pub.events, 1)
	assert.Equal(t, ports.EventItemUpdated, pub.events[0].Type)
}

func TestItemUpdate_SinCampos(t *testing.T) {
	repo := newFakeItemRepo()
	repo.items["i1"] = &entity.ItemWithCategory{Item: entity.Item{ID: "i1"}}
	uc, _, _ := newItemUC(repo)

	_, err := uc.Update(context.Background(), "i1", dto.UpdateItemRequest{})
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
}

func TestItemUpdate_NoExiste(t *testing.T) {
	repo := newFakeItemRepo()
	uc, _, _ := newItemUC(repo)

	name := "Nuevo"
	_, err := uc.Update(context.Background(), "missing", dto.UpdateItemRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemDelete_PublicaEventoConID(t *testing.T) {
	repo := newFakeItemRepo()
	repo.items["i1"] = &entity.ItemWithCategory{Item: entity.Item{ID: "i1"}}
	uc, _, pub := newItemUC(repo)

	require.NoError(t, uc.Delete(context.Background(), "i1"))
	assert.Equal(t, []string{"i1"}, repo.deleted)

	require.Len(t, pub.events, 1)
	assert.Equal(t, ports.EventItemDeleted, pub.events[0].Type)
	payload := pub.events[0].Payload.(map[string]any)
	assert.Equal(t, "i1", payload["itemId"])
}

func TestItemDelete_NoExiste(t *testing.T) {
	repo := newFakeItemRepo()
	uc, _, pub := newItemUC(repo)

	err := uc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, pub.events)
}

func TestBulkUpdate_AplicaTodosYPublicaUnEvento(t *testing.T) {
	repo := newFakeItemRepo()
	repo.quantities["i1"] = 10
	repo.quantities["i2"] = 5
	uc, tx, pub := newItemUC(repo)

	out, err := uc.BulkUpdate(context.Background(), dto.BulkUpdateRequest{
		Updates: []dto.BulkItemUpdate{
			{ID: "i1", QuantityChange: -3},
			{ID: "i2", QuantityChange: 7},
		},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, 7, out[0].NewQuantity)
	assert.Equal(t, 12, out[1].NewQuantity)
	assert.True(t, tx.committed)

	require.Len(t, pub.events, 1, "el lote publica un único evento agregado")
	assert.Equal(t, ports.EventBulkUpdate, pub.events[0].Type)
}

// Todo o nada: un artículo inexistente en mitad del lote revierte la secuencia
// completa y no publica nada.
func TestBulkUpdate_ArticuloInexistenteRevierteTodo(t *testing.T) {
	repo := newFakeItemRepo()
	repo.quantities["i1"] = 10
	uc, tx, pub := newItemUC(repo)

	_, err := uc.BulkUpdate(context.Background(), dto.BulkUpdateRequest{
		Updates: []dto.BulkItemUpdate{
			{ID: "i1", QuantityChange: -3},
			{ID: "missing", QuantityChange: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
	assert.Empty(t, pub.events)
}

func TestItemList_SobreDePaginacion(t *testing.T) {
	repo := newFakeItemRepo()
	repo.total = 45
	repo.listRows = make([]entity.ItemWithCategory, 20)
	uc, _, _ := newItemUC(repo)

	req := dto.ListItemsRequest{}
	req.Defaults()
	out, err := uc.List(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, out.Items, 20)
	assert.Equal(t, 1, out.Pagination.Page)
	assert.Equal(t, 45, out.Pagination.Total)
	assert.Equal(t, 3, out.Pagination.TotalPages)
	assert.True(t, out.Pagination.HasNextPage)
	assert.False(t, out.Pagination.HasPrevPage)
}
