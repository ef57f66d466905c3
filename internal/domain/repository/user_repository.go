package repository

import "context"

// UserRepository consultas sobre la tabla de usuarios. Por ahora solo la
// verificación de duplicados que usa el registro.
type UserRepository interface {
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
