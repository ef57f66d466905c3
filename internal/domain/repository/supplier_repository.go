package repository

import (
	"context"

	"github.com/resellhub/reseller-api/internal/domain/entity"
)

// SupplierRepository puerto de persistencia de proveedores.
type SupplierRepository interface {
	List(ctx context.Context) ([]entity.Supplier, error)
	Create(ctx context.Context, s *entity.Supplier) error
	// Update devuelve nil cuando no existe el proveedor.
	Update(ctx context.Context, s *entity.Supplier) (*entity.Supplier, error)
}
