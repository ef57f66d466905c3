package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/resellhub/reseller-api/internal/domain/entity"
	"github.com/resellhub/reseller-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// Las escrituras se invocan siempre dentro de la transacción de venta.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// List lista las ventas con sus líneas, cliente y artículo, la más reciente primero.
func (r *SaleRepo) List(ctx context.Context) ([]entity.SaleRow, error) {
	query := `
		SELECT s.id, s.customer_id, s.sale_date, s.status, s.total_amount, s.tax_amount,
			s.discount_amount, s.created_at,
			c.name, si.item_id, si.quantity, si.sale_price, si.profit_amount,
			i.name, i.upc
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		JOIN sale_items si ON si.sale_id = s.id
		JOIN items i ON i.id = si.item_id
		ORDER BY s.sale_date DESC, s.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []entity.SaleRow
	for rows.Next() {
		var row entity.SaleRow
		if err := rows.Scan(
			&row.ID, &row.CustomerID, &row.SaleDate, &row.Status, &row.TotalAmount,
			&row.TaxAmount, &row.DiscountAmount, &row.CreatedAt,
			&row.CustomerName, &row.ItemID, &row.Quantity, &row.SalePrice, &row.ProfitAmount,
			&row.ItemName, &row.ItemUPC,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// CreateHeader inserta la cabecera de la venta.
func (r *SaleRepo) CreateHeader(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO sales (id, customer_id, sale_date, status, total_amount, tax_amount, discount_amount, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.CustomerID, s.SaleDate, s.Status, s.TotalAmount, s.TaxAmount, s.DiscountAmount, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateLine inserta una línea de venta con el costo congelado.
func (r *SaleRepo) CreateLine(ctx context.Context, li *entity.SaleItem) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO sale_items (id, sale_id, item_id, quantity, sale_price, cost_at_sale, total_price, profit_amount)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		li.ID, li.SaleID, li.ItemID, li.Quantity, li.SalePrice, li.CostAtSale, li.TotalPrice, li.ProfitAmount,
	)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// SetTotals fija el total de la venta una vez sumadas todas las líneas.
func (r *SaleRepo) SetTotals(ctx context.Context, saleID string, total decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE sales SET total_amount = $2 WHERE id = $1`,
		saleID, total,
	)
	if err != nil {
		return fmt.Errorf("update sale totals: %w", err)
	}
	return nil
}
