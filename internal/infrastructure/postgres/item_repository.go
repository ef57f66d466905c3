package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/resellhub/reseller-api/internal/domain"
	"github.com/resellhub/reseller-api/internal/domain/entity"
	"github.com/resellhub/reseller-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// Columnas del artículo más las de su categoría (LEFT JOIN).
const itemWithCategoryColumns = `
	i.id, i.name, i.description, i.upc, i.sku, i.category_id,
	i.cost, i.sale_price, i.quantity_in_stock, i.min_stock_level, i.max_stock_level,
	i.location, i.condition_notes, i.tags, i.image_url, i.is_active, i.created_at, i.updated_at,
	c.name, c.color, c.icon`

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo artículo.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, description, upc, sku, category_id, cost, sale_price,
			quantity_in_stock, min_stock_level, max_stock_level, location, condition_notes,
			tags, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.UPC, item.SKU, item.CategoryID,
		item.Cost, item.SalePrice, item.QuantityInStock, item.MinStockLevel, item.MaxStockLevel,
		item.Location, item.ConditionNotes, item.Tags, item.ImageURL, item.IsActive,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo activo por ID. Devuelve nil si no existe.
func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.ItemWithCategory, error) {
	query := `
		SELECT ` + itemWithCategoryColumns + `
		FROM items i
		LEFT JOIN categories c ON c.id = i.category_id
		WHERE i.id = $1 AND i.is_active = true`
	item, err := scanItemWithCategory(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// GetByUPC obtiene un artículo activo por su UPC. Devuelve nil si no existe.
func (r *ItemRepo) GetByUPC(ctx context.Context, upc string) (*entity.ItemWithCategory, error) {
	query := `
		SELECT ` + itemWithCategoryColumns + `
		FROM items i
		LEFT JOIN categories c ON c.id = i.category_id
		WHERE i.upc = $1 AND i.is_active = true`
	item, err := scanItemWithCategory(r.q.QueryRow(ctx, query, upc))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by upc: %w", err)
	}
	return item, nil
}

// HasUPCOrSKUCollision reporta si otro artículo activo ya usa el UPC o SKU dados.
// excludeID puede ir vacío (alta de artículo nuevo).
func (r *ItemRepo) HasUPCOrSKUCollision(ctx context.Context, upc, sku *string, excludeID string) (bool, error) {
	if upc == nil && sku == nil {
		return false, nil
	}
	query := `
		SELECT EXISTS (
			SELECT 1 FROM items
			WHERE is_active = true
			  AND id <> $1
			  AND ((upc = $2 AND $2 IS NOT NULL) OR (sku = $3 AND $3 IS NOT NULL))
		)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, excludeID, upc, sku).Scan(&exists); err != nil {
		return false, fmt.Errorf("check upc/sku collision: %w", err)
	}
	return exists, nil
}

// List lista artículos activos con filtros, orden y paginación.
func (r *ItemRepo) List(ctx context.Context, f repository.ItemFilter) ([]entity.ItemWithCategory, error) {
	where, args := buildItemWhere(f)
	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM items i
		LEFT JOIN categories c ON c.id = i.category_id
		%s
		%s
		LIMIT $%d OFFSET $%d`,
		itemWithCategoryColumns, where, itemOrderBy(f.SortBy, f.SortOrder), len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []entity.ItemWithCategory
	for rows.Next() {
		item, err := scanItemWithCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, *item)
	}
	return list, rows.Err()
}

// Count cuenta los artículos que satisfacen el filtro (sin paginación).
func (r *ItemRepo) Count(ctx context.Context, f repository.ItemFilter) (int, error) {
	where, args := buildItemWhere(f)
	query := "SELECT COUNT(*) FROM items i " + where
	var total int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return total, nil
}

// Update aplica solo los campos presentes en changes y estampa updated_at.
// Devuelve nil cuando no existe un artículo activo con ese id.
func (r *ItemRepo) Update(ctx context.Context, id string, c repository.ItemChanges, now time.Time) (*entity.Item, error) {
	sets := []string{}
	args := []any{id}

	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if c.Name != nil {
		add("name", *c.Name)
	}
	if c.Description != nil {
		add("description", *c.Description)
	}
	if c.UPC != nil {
		add("upc", *c.UPC)
	}
	if c.SKU != nil {
		add("sku", *c.SKU)
	}
	if c.CategoryID != nil {
		add("category_id", *c.CategoryID)
	}
	if c.Cost != nil {
		add("cost", *c.Cost)
	}
	if c.SalePrice != nil {
		add("sale_price", *c.SalePrice)
	}
	if c.QuantityInStock != nil {
		add("quantity_in_stock", *c.QuantityInStock)
	}
	if c.MinStockLevel != nil {
		add("min_stock_level", *c.MinStockLevel)
	}
	if c.MaxStockLevel != nil {
		add("max_stock_level", *c.MaxStockLevel)
	}
	if c.Location != nil {
		add("location", *c.Location)
	}
	if c.ConditionNotes != nil {
		add("condition_notes", *c.ConditionNotes)
	}
	if c.Tags != nil {
		add("tags", c.Tags)
	}
	if c.ImageURL != nil {
		add("image_url", *c.ImageURL)
	}
	add("updated_at", now)

	query := fmt.Sprintf(`
		UPDATE items SET %s
		WHERE id = $1 AND is_active = true
		RETURNING id, name, description, upc, sku, category_id, cost, sale_price,
			quantity_in_stock, min_stock_level, max_stock_level, location, condition_notes,
			tags, image_url, is_active, created_at, updated_at`,
		strings.Join(sets, ", "))

	var it entity.Item
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&it.ID, &it.Name, &it.Description, &it.UPC, &it.SKU, &it.CategoryID,
		&it.Cost, &it.SalePrice, &it.QuantityInStock, &it.MinStockLevel, &it.MaxStockLevel,
		&it.Location, &it.ConditionNotes, &it.Tags, &it.ImageURL, &it.IsActive,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	return &it, nil
}

// SoftDelete marca is_active=false solo si el artículo estaba activo.
func (r *ItemRepo) SoftDelete(ctx context.Context, id string, now time.Time) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE items SET is_active = false, updated_at = $2 WHERE id = $1 AND is_active = true`,
		id, now,
	)
	if err != nil {
		return false, fmt.Errorf("soft delete item: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AdjustQuantity suma delta (con signo) a quantity_in_stock y devuelve la cantidad resultante.
func (r *ItemRepo) AdjustQuantity(ctx context.Context, id string, delta int, now time.Time) (int, bool, error) {
	var newQty int
	err := r.q.QueryRow(ctx,
		`UPDATE items SET quantity_in_stock = quantity_in_stock + $2, updated_at = $3
		 WHERE id = $1 AND is_active = true
		 RETURNING quantity_in_stock`,
		id, delta, now,
	).Scan(&newQty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("adjust item quantity: %w", err)
	}
	return newQty, true, nil
}

// GetCostForUpdate bloquea la fila del artículo y devuelve su costo vigente.
// Se usa dentro de la transacción de venta para congelar cost_at_sale.
func (r *ItemRepo) GetCostForUpdate(ctx context.Context, id string) (decimal.Decimal, bool, error) {
	var cost decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT cost FROM items WHERE id = $1 AND is_active = true FOR UPDATE`,
		id,
	).Scan(&cost)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("get item cost: %w", err)
	}
	return cost, true, nil
}

// LowStock lista los artículos activos en o bajo su umbral mínimo.
func (r *ItemRepo) LowStock(ctx context.Context) ([]entity.ItemWithCategory, error) {
	query := `
		SELECT ` + itemWithCategoryColumns + `
		FROM items i
		LEFT JOIN categories c ON c.id = i.category_id
		WHERE i.is_active = true AND i.quantity_in_stock <= i.min_stock_level
		ORDER BY i.quantity_in_stock ASC`
	return r.queryItems(ctx, query)
}

// Overstocked lista los artículos activos por encima de su máximo. A diferencia
// del filtro del listado, aquí se exige que el máximo esté configurado.
func (r *ItemRepo) Overstocked(ctx context.Context) ([]entity.ItemWithCategory, error) {
	query := `
		SELECT ` + itemWithCategoryColumns + `
		FROM items i
		LEFT JOIN categories c ON c.id = i.category_id
		WHERE i.is_active = true AND i.max_stock_level IS NOT NULL AND i.quantity_in_stock >= i.max_stock_level
		ORDER BY i.quantity_in_stock DESC`
	return r.queryItems(ctx, query)
}

func (r *ItemRepo) queryItems(ctx context.Context, query string, args ...any) ([]entity.ItemWithCategory, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var list []entity.ItemWithCategory
	for rows.Next() {
		item, err := scanItemWithCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, *item)
	}
	return list, rows.Err()
}

func scanItemWithCategory(row pgx.Row) (*entity.ItemWithCategory, error) {
	var it entity.ItemWithCategory
	err := row.Scan(
		&it.ID, &it.Name, &it.Description, &it.UPC, &it.SKU, &it.CategoryID,
		&it.Cost, &it.SalePrice, &it.QuantityInStock, &it.MinStockLevel, &it.MaxStockLevel,
		&it.Location, &it.ConditionNotes, &it.Tags, &it.ImageURL, &it.IsActive,
		&it.CreatedAt, &it.UpdatedAt,
		&it.CategoryName, &it.CategoryColor, &it.CategoryIcon,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
