package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código SQLSTATE de violación de constraint único.
const codeUniqueViolation = "23505"

// isUniqueViolation reporta si el error viene de un índice único (UPC/SKU de
// artículos activos, nombre de categoría). pgx entrega *pgconn.PgError para
// todo error del servidor, así que alcanza con inspeccionar el código.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
