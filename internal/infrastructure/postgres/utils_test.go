package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "items_upc_active_uq"}
	assert.True(t, isUniqueViolation(unique))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert item: %w", unique)))

	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"})) // FK
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}
