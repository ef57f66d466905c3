package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrNoFieldsToUpdate = errors.New("no hay campos para actualizar")
	ErrForbiddenQuery   = errors.New("consulta no permitida")
)
