package entity

import "time"

// Tipos de movimiento del libro de stock.
const (
	TransactionTypeIn  = "in"
	TransactionTypeOut = "out"
)

// Transaction asiento del libro de movimientos de stock, independiente de las
// ventas. Referencia un Item existente; la cantidad siempre es positiva y el
// signo lo da Type.
type Transaction struct {
	ID        string
	ItemID    string
	Type      string // in | out
	Quantity  int
	Notes     *string
	CreatedAt time.Time
}

// TransactionRow fila del listado: asiento + datos del artículo (JOIN items).
type TransactionRow struct {
	Transaction
	ItemName string
	ItemUPC  *string
	ItemSKU  *string
}
