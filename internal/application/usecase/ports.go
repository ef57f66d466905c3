package usecase

import (
	"context"

	"github.com/resellhub/reseller-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción. Dentro del callback de
// TxRunner.Run todos operan sobre la misma conexión, en orden de programa.
type TxRepos struct {
	Items        repository.ItemRepository
	Sales        repository.SaleRepository
	Transactions repository.TransactionRepository
}

// TxRunner ejecuta fn dentro de una transacción: COMMIT si fn devuelve nil,
// ROLLBACK si devuelve error. Sin reintentos: un fallo aborta la secuencia
// completa y el error original se propaga al llamador.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
