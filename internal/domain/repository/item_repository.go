package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/resellhub/reseller-api/internal/domain/entity"
)

// ItemFilter parámetros ya validados para listar artículos.
// SortBy y SortOrder llegan restringidos a las enumeraciones del DTO;
// el adaptador solo interpola tokens de esa lista cerrada.
type ItemFilter struct {
	Search      string
	CategoryID  string
	StockStatus string // low | normal | overstocked | ""
	SortBy      string // name | cost | sale_price | profit_margin | quantity_in_stock | created_at
	SortOrder   string // asc | desc
	Limit       int
	Offset      int
}

// ItemChanges campos de una actualización parcial. Solo los punteros no nil
// se incluyen en el UPDATE; lo omitido queda intacto.
type ItemChanges struct {
	Name            *string
	Description     *string
	UPC             *string
	SKU             *string
	CategoryID      *string
	Cost            *decimal.Decimal
	SalePrice       *decimal.Decimal
	QuantityInStock *int
	MinStockLevel   *int
	MaxStockLevel   *int
	Location        *string
	ConditionNotes  *string
	Tags            []string
	ImageURL        *string
}

// Empty indica si la actualización no trae ningún campo.
func (c ItemChanges) Empty() bool {
	return c.Name == nil && c.Description == nil && c.UPC == nil && c.SKU == nil &&
		c.CategoryID == nil && c.Cost == nil && c.SalePrice == nil &&
		c.QuantityInStock == nil && c.MinStockLevel == nil && c.MaxStockLevel == nil &&
		c.Location == nil && c.ConditionNotes == nil && c.Tags == nil && c.ImageURL == nil
}

// ItemRepository puerto de persistencia de artículos. Los métodos de lectura
// solo ven artículos activos; Get* devuelve nil (sin error) cuando no hay fila.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.ItemWithCategory, error)
	GetByUPC(ctx context.Context, upc string) (*entity.ItemWithCategory, error)

	// HasUPCOrSKUCollision reporta si otro artículo activo (distinto de excludeID,
	// que puede ir vacío) ya usa el UPC o el SKU dados.
	HasUPCOrSKUCollision(ctx context.Context, upc, sku *string, excludeID string) (bool, error)

	List(ctx context.Context, f ItemFilter) ([]entity.ItemWithCategory, error)
	Count(ctx context.Context, f ItemFilter) (int, error)

	// Update aplica solo los campos presentes y estampa updated_at.
	// Devuelve nil cuando no existe un artículo activo con ese id.
	Update(ctx context.Context, id string, changes ItemChanges, now time.Time) (*entity.Item, error)

	// SoftDelete marca is_active=false solo si estaba activo.
	SoftDelete(ctx context.Context, id string, now time.Time) (bool, error)

	// AdjustQuantity suma delta (con signo) a quantity_in_stock y devuelve la
	// cantidad resultante. found=false cuando no hay artículo activo con ese id.
	AdjustQuantity(ctx context.Context, id string, delta int, now time.Time) (newQty int, found bool, err error)

	// GetCostForUpdate bloquea la fila (SELECT FOR UPDATE) y devuelve el costo
	// vigente, usado para congelar cost_at_sale dentro de la transacción de venta.
	GetCostForUpdate(ctx context.Context, id string) (cost decimal.Decimal, found bool, err error)

	LowStock(ctx context.Context) ([]entity.ItemWithCategory, error)
	Overstocked(ctx context.Context) ([]entity.ItemWithCategory, error)
}
