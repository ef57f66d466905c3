package entity

import "time"

// Supplier proveedor. Entidad independiente, sin invariantes cruzadas.
type Supplier struct {
	ID        string
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
