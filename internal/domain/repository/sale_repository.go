package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/resellhub/reseller-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia de ventas. CreateHeader, CreateLine y
// SetTotals se invocan dentro de la transacción de venta (TxRunner).
type SaleRepository interface {
	List(ctx context.Context) ([]entity.SaleRow, error)
	CreateHeader(ctx context.Context, s *entity.Sale) error
	CreateLine(ctx context.Context, li *entity.SaleItem) error
	SetTotals(ctx context.Context, saleID string, total decimal.Decimal) error
}
