package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/resellhub/reseller-api/internal/application/dto"
	"github.com/resellhub/reseller-api/internal/domain"
	"github.com/resellhub/reseller-api/internal/domain/entity"
	"github.com/resellhub/reseller-api/internal/domain/repository"
)

// SaleUseCase registra ventas de forma transaccional: cabecera, líneas con
// costo congelado y descuento de stock son una sola unidad atómica. Una venta
// nunca puede dejar el inventario descontado a medias.
type SaleUseCase struct {
	repo repository.SaleRepository
	tx   TxRunner
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, tx TxRunner) *SaleUseCase {
	return &SaleUseCase{repo: repo, tx: tx}
}

// List lista las ventas con sus líneas (join a clientes y artículos).
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleRowResponse, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SaleRowResponse{
			SaleResponse: dto.SaleResponse{
				ID:             r.ID,
				CustomerID:     r.CustomerID,
				SaleDate:       r.SaleDate,
				Status:         r.Status,
				TotalAmount:    r.TotalAmount,
				TaxAmount:      r.TaxAmount,
				DiscountAmount: r.DiscountAmount,
				CreatedAt:      r.CreatedAt,
			},
			CustomerName: r.CustomerName,
			ItemID:       r.ItemID,
			Quantity:     r.Quantity,
			SalePrice:    r.SalePrice,
			ProfitAmount: r.ProfitAmount,
			ItemName:     r.ItemName,
			ItemUPC:      r.ItemUPC,
		})
	}
	return out, nil
}

// Create registra la venta completa en una transacción. Por cada línea se
// bloquea el artículo, se congela su costo vigente en cost_at_sale y se
// descuenta el stock; un fallo en cualquier línea revierte todo lo anterior,
// incluida la cabecera.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	now := time.Now()
	sale := &entity.Sale{
		ID:             uuid.New().String(),
		CustomerID:     in.CustomerID,
		SaleDate:       in.SaleDate,
		Status:         entity.SaleStatusCompleted,
		TotalAmount:    decimal.Zero,
		TaxAmount:      decimal.Zero,
		DiscountAmount: decimal.Zero,
		CreatedAt:      now,
	}

	err := uc.tx.Run(ctx, func(r TxRepos) error {
		if err := r.Sales.CreateHeader(ctx, sale); err != nil {
			return err
		}

		total := decimal.Zero
		for _, line := range in.Items {
			cost, found, err := r.Items.GetCostForUpdate(ctx, line.ItemID)
			if err != nil {
				return err
			}
			if !found {
				return domain.ErrNotFound
			}

			qty := decimal.NewFromInt(int64(line.Quantity))
			totalPrice := line.SalePrice.Mul(qty)
			li := &entity.SaleItem{
				ID:           uuid.New().String(),
				SaleID:       sale.ID,
				ItemID:       line.ItemID,
				Quantity:     line.Quantity,
				SalePrice:    line.SalePrice,
				CostAtSale:   cost,
				TotalPrice:   totalPrice,
				ProfitAmount: line.SalePrice.Sub(cost).Mul(qty),
			}
			if err := r.Sales.CreateLine(ctx, li); err != nil {
				return err
			}
			if _, found, err := r.Items.AdjustQuantity(ctx, line.ItemID, -line.Quantity, now); err != nil {
				return err
			} else if !found {
				return domain.ErrNotFound
			}
			total = total.Add(totalPrice)
		}

		sale.TotalAmount = total
		return r.Sales.SetTotals(ctx, sale.ID, total)
	})
	if err != nil {
		return nil, err
	}

	return &dto.SaleResponse{
		ID:             sale.ID,
		CustomerID:     sale.CustomerID,
		SaleDate:       sale.SaleDate,
		Status:         sale.Status,
		TotalAmount:    sale.TotalAmount,
		TaxAmount:      sale.TaxAmount,
		DiscountAmount: sale.DiscountAmount,
		CreatedAt:      sale.CreatedAt,
	}, nil
}
