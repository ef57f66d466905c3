package repository

import (
	"context"

	"github.com/resellhub/reseller-api/internal/domain/entity"
)

// CustomerRepository puerto de persistencia de clientes.
type CustomerRepository interface {
	List(ctx context.Context) ([]entity.Customer, error)
	Create(ctx context.Context, c *entity.Customer) error
}
