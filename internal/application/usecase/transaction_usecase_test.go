package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/resellhub/reseller-api/internal/application/dto"
	"github.com/resellhub/reseller-api/internal/application/usecase"
	"github.com/resellhub/reseller-api/internal/domain"
	"github.com/resellhub/reseller-api/internal/domain/entity"
)

func newTransactionUC(items *fakeItemRepo, trans *fakeTransactionRepo) (*usecase.TransactionUseCase, *fakeTxRunner) {
	tx := &fakeTxRunner{repos: usecase.TxRepos{Items: items, Transactions: trans}}
	return usecase.NewTransactionUseCase(trans, tx), tx
}

func TestTransactionCreate_EntradaSumaStock(t *testing.T) {
	items := newFakeItemRepo()
	items.quantities["i1"] = 10
	trans := &fakeTransactionRepo{}
	uc, tx := newTransactionUC(items, trans)

	out, err := uc.Create(context.Background(), dto.CreateTransactionRequest{
		ItemID:   "i1",
		Type:     entity.TransactionTypeIn,
		Quantity: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 14, items.quantities["i1"])
	assert.True(t, tx.committed)
	require.Len(t, trans.created, 1)
	assert.Equal(t, 4, out.Quantity, "la cantidad del asiento se guarda sin signo")
}

func TestTransactionCreate_SalidaRestaStock(t *testing.T) {
	items := newFakeItemRepo()
	items.quantities["i1"] = 10
	trans := &fakeTransactionRepo{}
	uc, _ := newTransactionUC(items, trans)

	_, err := uc.Create(context.Background(), dto.CreateTransactionRequest{
		ItemID:   "i1",
		Type:     entity.TransactionTypeOut,
		Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, items.quantities["i1"])
	require.Len(t, items.adjusted, 1)
	assert.Equal(t, -3, items.adjusted[0].delta)
}

// El asiento y el ajuste van juntos: artículo inexistente deja el libro intacto.
func TestTransactionCreate_ArticuloInexistente(t *testing.T) {
	items := newFakeItemRepo()
	trans := &fakeTransactionRepo{}
	uc, tx := newTransactionUC(items, trans)

	_, err := uc.Create(context.Background(), dto.CreateTransactionRequest{
		ItemID:   "missing",
		Type:     entity.TransactionTypeIn,
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, tx.rolledBack)
	assert.Empty(t, trans.created)
}
