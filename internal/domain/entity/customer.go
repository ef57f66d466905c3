package entity

import "time"

// Customer cliente. Referenciado opcionalmente por Sale.
type Customer struct {
	ID        string
	Name      string
	Email     *string
	Phone     *string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
