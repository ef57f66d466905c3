package postgres

import (
	"context"
	"fmt"

	"github.com/resellhub/reseller-api/internal/domain/entity"
	"github.com/resellhub/reseller-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del libro de movimientos sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// List lista los asientos con los datos del artículo, el más reciente primero.
func (r *TransactionRepo) List(ctx context.Context) ([]entity.TransactionRow, error) {
	query := `
		SELECT t.id, t.item_id, t.type, t.quantity, t.notes, t.created_at,
			i.name, i.upc, i.sku
		FROM transactions t
		JOIN items i ON i.id = t.item_id
		ORDER BY t.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var list []entity.TransactionRow
	for rows.Next() {
		var row entity.TransactionRow
		if err := rows.Scan(
			&row.ID, &row.ItemID, &row.Type, &row.Quantity, &row.Notes, &row.CreatedAt,
			&row.ItemName, &row.ItemUPC, &row.ItemSKU,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Create inserta el asiento. Se invoca en la misma transacción que el ajuste de stock.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO transactions (id, item_id, type, quantity, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.ItemID, t.Type, t.Quantity, t.Notes, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}
