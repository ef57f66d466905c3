package repository

import (
	"context"

	"github.com/resellhub/reseller-api/internal/domain/entity"
)

// TransactionRepository puerto del libro de movimientos de stock.
type TransactionRepository interface {
	List(ctx context.Context) ([]entity.TransactionRow, error)
	Create(ctx context.Context, t *entity.Transaction) error
}
