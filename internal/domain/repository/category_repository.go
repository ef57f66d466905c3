package repository

import (
	"context"

	"github.com/resellhub/reseller-api/internal/domain/entity"
)

// CategoryRepository puerto de persistencia de categorías.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, c *entity.Category) error
	// Update devuelve nil cuando no existe la categoría.
	Update(ctx context.Context, c *entity.Category) (*entity.Category, error)
	// Delete es borrado físico (las categorías no tienen soft delete).
	Delete(ctx context.Context, id string) (bool, error)
}
