package dto

import "time"

// CreateTransactionRequest entrada para un asiento del libro de stock.
type CreateTransactionRequest struct {
	ItemID   string  `json:"item_id" validate:"required,uuid4"`
	Type     string  `json:"type" validate:"required,oneof=in out"`
	Quantity int     `json:"quantity" validate:"min=1"`
	Notes    *string `json:"notes"`
}

// TransactionResponse salida de un asiento.
type TransactionResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// TransactionRowResponse fila del listado (asiento + datos del artículo).
type TransactionRowResponse struct {
	TransactionResponse
	ItemName string  `json:"item_name"`
	ItemUPC  *string `json:"upc"`
	ItemSKU  *string `json:"sku"`
}
