package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/resellhub/reseller-api/internal/application/dto"
	"github.com/resellhub/reseller-api/internal/domain"
	"github.com/resellhub/reseller-api/internal/domain/entity"
	"github.com/resellhub/reseller-api/internal/domain/repository"
)

// TransactionUseCase libro de movimientos de stock. El asiento y el ajuste de
// cantidad del artículo van en la misma transacción: si una mitad falla, la
// otra se revierte.
type TransactionUseCase struct {
	repo repository.TransactionRepository
	tx   TxRunner
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository, tx TxRunner) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, tx: tx}
}

// List lista los asientos, el más reciente primero.
func (uc *TransactionUseCase) List(ctx context.Context) ([]dto.TransactionRowResponse, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.TransactionRowResponse{
			TransactionResponse: dto.TransactionResponse{
				ID:        r.ID,
				ItemID:    r.ItemID,
				Type:      r.Type,
				Quantity:  r.Quantity,
				Notes:     r.Notes,
				CreatedAt: r.CreatedAt,
			},
			ItemName: r.ItemName,
			ItemUPC:  r.ItemUPC,
			ItemSKU:  r.ItemSKU,
		})
	}
	return out, nil
}

// Create inserta el asiento y ajusta la cantidad del artículo (+q para "in",
// -q para "out") atómicamente.
func (uc *TransactionUseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	now := time.Now()
	tr := &entity.Transaction{
		ID:        uuid.New().String(),
		ItemID:    in.ItemID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Notes:     in.Notes,
		CreatedAt: now,
	}

	delta := in.Quantity
	if in.Type == entity.TransactionTypeOut {
		delta = -in.Quantity
	}

	err := uc.tx.Run(ctx, func(r TxRepos) error {
		if _, found, err := r.Items.AdjustQuantity(ctx, in.ItemID, delta, now); err != nil {
			return err
		} else if !found {
			return domain.ErrNotFound
		}
		return r.Transactions.Create(ctx, tr)
	})
	if err != nil {
		return nil, err
	}

	return &dto.TransactionResponse{
		ID:        tr.ID,
		ItemID:    tr.ItemID,
		Type:      tr.Type,
		Quantity:  tr.Quantity,
		Notes:     tr.Notes,
		CreatedAt: tr.CreatedAt,
	}, nil
}
