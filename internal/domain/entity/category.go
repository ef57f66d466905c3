package entity

import "time"

// Category agrupa artículos. Referenciada por Item (FK nullable).
type Category struct {
	ID          string
	Name        string
	Description *string
	Color       *string
	Icon        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
