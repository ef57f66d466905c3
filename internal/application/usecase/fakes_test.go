package usecase_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/resellhub/reseller-api/internal/application/ports"
	"github.com/resellhub/reseller-api/internal/application/usecase"
	"github.com/resellhub/reseller-api/internal/domain/entity"
	"github.com/resellhub/reseller-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios y puertos
// ──────────────────────────────────────────────────────────────────────────────

type adjustCall struct {
	id    string
	delta int
}

type fakeItemRepo struct {
	items      map[string]*entity.ItemWithCategory
	collision  bool
	costs      map[string]decimal.Decimal
	quantities map[string]int
	adjusted   []adjustCall
	deleted    []string
	created    []*entity.Item
	updated    *entity.Item
	changes    repository.ItemChanges
	changesAt  time.Time
	listRows   []entity.ItemWithCategory
	total      int
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{
		items:      map[string]*entity.ItemWithCategory{},
		costs:      map[string]decimal.Decimal{},
		quantities: map[string]int{},
	}
}

func (f *fakeItemRepo) Create(_ context.Context, item *entity.Item) error {
	f.created = append(f.created, item)
	return nil
}

func (f *fakeItemRepo) GetByID(_ context.Context, id string) (*entity.ItemWithCategory, error) {
	return f.items[id], nil
}

func (f *fakeItemRepo) GetByUPC(_ context.Context, upc string) (*entity.ItemWithCategory, error) {
	for _, it := range f.items {
		if it.UPC != nil && *it.UPC == upc {
			return it, nil
		}
	}
	return nil, nil
}

func (f *fakeItemRepo) HasUPCOrSKUCollision(_ context.Context, _, _ *string, _ string) (bool, error) {
	return f.collision, nil
}

func (f *fakeItemRepo) List(_ context.Context, _ repository.ItemFilter) ([]entity.ItemWithCategory, error) {
	return f.listRows, nil
}

func (f *fakeItemRepo) Count(_ context.Context, _ repository.ItemFilter) (int, error) {
	return f.total, nil
}

func (f *fakeItemRepo) Update(_ context.Context, _ string, changes repository.ItemChanges, now time.Time) (*entity.Item, error) {
	f.changes = changes
	f.changesAt = now
	return f.updated, nil
}

func (f *fakeItemRepo) SoftDelete(_ context.Context, id string, _ time.Time) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	f.deleted = append(f.deleted, id)
	return true, nil
}

func (f *fakeItemRepo) AdjustQuantity(_ context.Context, id string, delta int, _ time.Time) (int, bool, error) {
	q, ok := f.quantities[id]
	if !ok {
		return 0, false, nil
	}
	q += delta
	f.quantities[id] = q
	f.adjusted = append(f.adjusted, adjustCall{id: id, delta: delta})
	return q, true, nil
}

func (f *fakeItemRepo) GetCostForUpdate(_ context.Context, id string) (decimal.Decimal, bool, error) {
	cost, ok := f.costs[id]
	if !ok {
		return decimal.Zero, false, nil
	}
	return cost, true, nil
}

func (f *fakeItemRepo) LowStock(_ context.Context) ([]entity.ItemWithCategory, error) {
	return f.listRows, nil
}

func (f *fakeItemRepo) Overstocked(_ context.Context) ([]entity.ItemWithCategory, error) {
	return f.listRows, nil
}

type fakeSaleRepo struct {
	headers []*entity.Sale
	lines   []*entity.SaleItem
	totals  map[string]decimal.Decimal
	rows    []entity.SaleRow
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{totals: map[string]decimal.Decimal{}}
}

func (f *fakeSaleRepo) List(_ context.Context) ([]entity.SaleRow, error) { return f.rows, nil }

func (f *fakeSaleRepo) CreateHeader(_ context.Context, s *entity.Sale) error {
	f.headers = append(f.headers, s)
	return nil
}

func (f *fakeSaleRepo) CreateLine(_ context.Context, li *entity.SaleItem) error {
	f.lines = append(f.lines, li)
	return nil
}

func (f *fakeSaleRepo) SetTotals(_ context.Context, saleID string, total decimal.Decimal) error {
	f.totals[saleID] = total
	return nil
}

type fakeTransactionRepo struct {
	created []*entity.Transaction
	rows    []entity.TransactionRow
}

func (f *fakeTransactionRepo) List(_ context.Context) ([]entity.TransactionRow, error) {
	return f.rows, nil
}

func (f *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	f.created = append(f.created, t)
	return nil
}

// fakeTxRunner ejecuta el callback sin transacción real y registra si la
// secuencia habría terminado en commit o en rollback.
type fakeTxRunner struct {
	repos      usecase.TxRepos
	committed  bool
	rolledBack bool
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(usecase.TxRepos) error) error {
	if err := fn(f.repos); err != nil {
		f.rolledBack = true
		return err
	}
	f.committed = true
	return nil
}

type fakePublisher struct {
	events []ports.ChangeEvent
}

func (f *fakePublisher) Publish(_ context.Context, ev ports.ChangeEvent) {
	f.events = append(f.events, ev)
}

type fakeUserRepo struct {
	exists bool
}

func (f *fakeUserRepo) ExistsByUsernameOrEmail(_ context.Context, _, _ string) (bool, error) {
	return f.exists, nil
}

// fakeReportRepo respuestas enlatadas para el caso de uso de reportes.
type fakeReportRepo struct {
	inventory   repository.InventoryTotals
	lowStock    int
	sales       repository.SalesTotals
	topCats     []repository.CategorySales
	rowSet      *repository.RowSet
	customQuery string
	customArgs  []any
	err         error
}

func (f *fakeReportRepo) InventoryTotals(_ context.Context) (repository.InventoryTotals, error) {
	return f.inventory, f.err
}

func (f *fakeReportRepo) LowStockCount(_ context.Context) (int, error) {
	return f.lowStock, f.err
}

func (f *fakeReportRepo) RecentSalesTotals(_ context.Context, _ int) (repository.SalesTotals, error) {
	return f.sales, f.err
}

func (f *fakeReportRepo) TopCategories(_ context.Context, _, _ int) ([]repository.CategorySales, error) {
	return f.topCats, f.err
}

func (f *fakeReportRepo) InventorySummary(_ context.Context, _ repository.InventorySummaryFilter) (*repository.RowSet, error) {
	return f.rowSet, f.err
}

func (f *fakeReportRepo) TopSelling(_ context.Context, _ repository.TopSellingFilter) ([]repository.TopSellingRow, error) {
	return nil, f.err
}

func (f *fakeReportRepo) ProfitAnalysis(_ context.Context, _, _ string) ([]repository.ProfitRow, error) {
	return nil, f.err
}

func (f *fakeReportRepo) LowStockReport(_ context.Context, _ *int) (*repository.RowSet, error) {
	return f.rowSet, f.err
}

func (f *fakeReportRepo) OverstockedReport(_ context.Context, _ *int) (*repository.RowSet, error) {
	return f.rowSet, f.err
}

func (f *fakeReportRepo) SalesPerformance(_ context.Context, _, _ *time.Time, _ string) ([]repository.PerformanceRow, error) {
	return nil, f.err
}

func (f *fakeReportRepo) Export(_ context.Context, _ string) (*repository.RowSet, error) {
	return f.rowSet, f.err
}

func (f *fakeReportRepo) Custom(_ context.Context, query string, params []any) (*repository.RowSet, error) {
	f.customQuery = query
	f.customArgs = params
	return f.rowSet, f.err
}
