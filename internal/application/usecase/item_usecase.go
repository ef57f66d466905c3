package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/resellhub/reseller-api/internal/application/dto"
	"github.com/resellhub/reseller-api/internal/application/ports"
	"github.com/resellhub/reseller-api/internal/domain"
	"github.com/resellhub/reseller-api/internal/domain/entity"
	"github.com/resellhub/reseller-api/internal/domain/repository"
)

// ItemUseCase operaciones sobre artículos del inventario: listado con filtros,
// CRUD con borrado lógico y el ajuste masivo de cantidades (todo o nada).
// Tras cada mutación exitosa publica un evento al tópico "inventory".
type ItemUseCase struct {
	repo      repository.ItemRepository
	tx        TxRunner
	publisher ports.ChangePublisher
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, tx TxRunner, publisher ports.ChangePublisher) *ItemUseCase {
	return &ItemUseCase{repo: repo, tx: tx, publisher: publisher}
}

// List lista artículos activos con filtros, orden y paginación.
func (uc *ItemUseCase) List(ctx context.Context, req dto.ListItemsRequest) (*dto.ItemListResponse, error) {
	f := repository.ItemFilter{
		Search:      req.Search,
		CategoryID:  req.Category,
		StockStatus: req.StockStatus,
		SortBy:      req.SortBy,
		SortOrder:   req.SortOrder,
		Limit:       req.Limit,
		Offset:      (req.Page - 1) * req.Limit,
	}

	total, err := uc.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}
	rows, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ItemResponse, 0, len(rows))
	for i := range rows {
		items = append(items, *toItemResponse(&rows[i]))
	}
	return &dto.ItemListResponse{
		Items:      items,
		Pagination: dto.NewPagination(req.Page, req.Limit, total),
	}, nil
}

// GetByID obtiene un artículo activo. Devuelve nil cuando no existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// GetByUPC busca un artículo activo por su UPC exacto.
func (uc *ItemUseCase) GetByUPC(ctx context.Context, upc string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByUPC(ctx, upc)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// Create crea un artículo. El UPC y el SKU no pueden chocar con otro artículo activo.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.UPC != nil || in.SKU != nil {
		collision, err := uc.repo.HasUPCOrSKUCollision(ctx, in.UPC, in.SKU, "")
		if err != nil {
			return nil, err
		}
		if collision {
			return nil, domain.ErrDuplicate
		}
	}

	now := time.Now()
	minStock := 0
	if in.MinStockLevel != nil {
		minStock = *in.MinStockLevel
	}
	item := &entity.Item{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Description:     in.Description,
		UPC:             in.UPC,
		SKU:             in.SKU,
		CategoryID:      in.CategoryID,
		Cost:            in.Cost,
		SalePrice:       in.SalePrice,
		QuantityInStock: in.QuantityInStock,
		MinStockLevel:   minStock,
		MaxStockLevel:   in.MaxStockLevel,
		Location:        in.Location,
		ConditionNotes:  in.ConditionNotes,
		Tags:            in.Tags,
		ImageURL:        in.ImageURL,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	out := toItemResponse(&entity.ItemWithCategory{Item: *item})
	uc.publisher.Publish(ctx, ports.ChangeEvent{
		Type:    ports.EventItemCreated,
		Payload: map[string]any{"item": out},
	})
	return out, nil
}

// Update aplica una actualización parcial: solo los campos presentes cambian,
// lo omitido queda intacto y updated_at siempre se estampa.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	if in.UPC != nil || in.SKU != nil {
		collision, err := uc.repo.HasUPCOrSKUCollision(ctx, in.UPC, in.SKU, id)
		if err != nil {
			return nil, err
		}
		if collision {
			return nil, domain.ErrDuplicate
		}
	}

	changes := repository.ItemChanges{
		Name:            in.Name,
		Description:     in.Description,
		UPC:             in.UPC,
		SKU:             in.SKU,
		CategoryID:      in.CategoryID,
		Cost:            in.Cost,
		SalePrice:       in.SalePrice,
		QuantityInStock: in.QuantityInStock,
		MinStockLevel:   in.MinStockLevel,
		MaxStockLevel:   in.MaxStockLevel,
		Location:        in.Location,
		ConditionNotes:  in.ConditionNotes,
		Tags:            in.Tags,
		ImageURL:        in.ImageURL,
	}
	if changes.Empty() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	updated, err := uc.repo.Update(ctx, id, changes, time.Now())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}

	out := toItemResponse(&entity.ItemWithCategory{Item: *updated})
	uc.publisher.Publish(ctx, ports.ChangeEvent{
		Type:    ports.EventItemUpdated,
		Payload: map[string]any{"item": out},
	})
	return out, nil
}

// Delete borra lógicamente: is_active pasa a false, la fila se conserva.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	found, err := uc.repo.SoftDelete(ctx, id, time.Now())
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	uc.publisher.Publish(ctx, ports.ChangeEvent{
		Type:    ports.EventItemDeleted,
		Payload: map[string]any{"itemId": id},
	})
	return nil
}

// BulkUpdate aplica todos los deltas de cantidad en una sola transacción.
// Si un solo ajuste falla (p.ej. artículo inexistente) no se aplica ninguno.
func (uc *ItemUseCase) BulkUpdate(ctx context.Context, in dto.BulkUpdateRequest) ([]dto.BulkUpdateResult, error) {
	now := time.Now()
	results := make([]dto.BulkUpdateResult, 0, len(in.Updates))

	err := uc.tx.Run(ctx, func(r TxRepos) error {
		for _, u := range in.Updates {
			newQty, found, err := r.Items.AdjustQuantity(ctx, u.ID, u.QuantityChange, now)
			if err != nil {
				return err
			}
			if !found {
				return domain.ErrNotFound
			}
			results = append(results, dto.BulkUpdateResult{
				ID:             u.ID,
				QuantityChange: u.QuantityChange,
				Notes:          u.Notes,
				NewQuantity:    newQty,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Un único evento agregado con la cantidad resultante de cada artículo.
	uc.publisher.Publish(ctx, ports.ChangeEvent{
		Type:    ports.EventBulkUpdate,
		Payload: map[string]any{"updates": results},
	})
	return results, nil
}

// LowStock artículos activos con cantidad <= umbral mínimo.
func (uc *ItemUseCase) LowStock(ctx context.Context) ([]dto.ItemResponse, error) {
	rows, err := uc.repo.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	return toItemResponses(rows), nil
}

// Overstocked artículos activos con cantidad >= umbral máximo definido.
func (uc *ItemUseCase) Overstocked(ctx context.Context) ([]dto.ItemResponse, error) {
	rows, err := uc.repo.Overstocked(ctx)
	if err != nil {
		return nil, err
	}
	return toItemResponses(rows), nil
}

func toItemResponses(rows []entity.ItemWithCategory) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *toItemResponse(&rows[i]))
	}
	return out
}

func toItemResponse(e *entity.ItemWithCategory) *dto.ItemResponse {
	if e == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:              e.ID,
		Name:            e.Name,
		Description:     e.Description,
		UPC:             e.UPC,
		SKU:             e.SKU,
		CategoryID:      e.CategoryID,
		Cost:            e.Cost,
		SalePrice:       e.SalePrice,
		QuantityInStock: e.QuantityInStock,
		MinStockLevel:   e.MinStockLevel,
		MaxStockLevel:   e.MaxStockLevel,
		Location:        e.Location,
		ConditionNotes:  e.ConditionNotes,
		Tags:            e.Tags,
		ImageURL:        e.ImageURL,
		IsActive:        e.IsActive,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
		CategoryName:    e.CategoryName,
		CategoryColor:   e.CategoryColor,
		CategoryIcon:    e.CategoryIcon,
	}
}
