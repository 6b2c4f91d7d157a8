package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrt/ventastock-api/internal/application/dto"
	"github.com/davidrt/ventastock-api/internal/domain"
	"github.com/davidrt/ventastock-api/internal/domain/entity"
	"github.com/davidrt/ventastock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
	// derivados persistidos por UpdateDerived, por producto
	derived map[string][2]decimal.Decimal
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{
		products: make(map[string]*entity.Product),
		derived:  make(map[string][2]decimal.Decimal),
	}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.CompanyID == companyID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateDerived(productID string, currentStock, avgConsumption decimal.Decimal) error {
	r.derived[productID] = [2]decimal.Decimal{currentStock, avgConsumption}
	p := r.products[productID]
	p.CurrentStock = currentStock
	p.AvgConsumption = avgConsumption
	return nil
}
func (r *fakeProductRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type fakeTxnRepo struct {
	txns []*entity.StockTransaction
}

func (r *fakeTxnRepo) Create(t *entity.StockTransaction) error {
	r.txns = append(r.txns, t)
	return nil
}
func (r *fakeTxnRepo) CreateBatch(txns []*entity.StockTransaction) error {
	r.txns = append(r.txns, txns...)
	return nil
}
func (r *fakeTxnRepo) ListAllByProduct(productID string) ([]*entity.StockTransaction, error) {
	var out []*entity.StockTransaction
	for _, t := range r.txns {
		if t.ProductID == productID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (r *fakeTxnRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockTransaction, error) {
	return r.ListAllByProduct(productID)
}
func (r *fakeTxnRepo) ProductIDsByOperation(operationID string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range r.txns {
		if t.OperationID == operationID {
			if _, ok := seen[t.ProductID]; !ok {
				seen[t.ProductID] = struct{}{}
				out = append(out, t.ProductID)
			}
		}
	}
	return out, nil
}
func (r *fakeTxnRepo) DeleteByOperation(operationID string) (int64, error) {
	var kept []*entity.StockTransaction
	var deleted int64
	for _, t := range r.txns {
		if t.OperationID == operationID {
			deleted++
			continue
		}
		kept = append(kept, t)
	}
	r.txns = kept
	return deleted, nil
}

type fakeOpRepo struct {
	ops map[string]*entity.ImportOperation
}

func newFakeOpRepo() *fakeOpRepo {
	return &fakeOpRepo{ops: make(map[string]*entity.ImportOperation)}
}

func (r *fakeOpRepo) Create(op *entity.ImportOperation) error { r.ops[op.ID] = op; return nil }
func (r *fakeOpRepo) GetByID(id string) (*entity.ImportOperation, error) {
	return r.ops[id], nil
}
func (r *fakeOpRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.ImportOperation, error) {
	var out []*entity.ImportOperation
	for _, op := range r.ops {
		if op.CompanyID == companyID {
			out = append(out, op)
		}
	}
	return out, nil
}
func (r *fakeOpRepo) Delete(id string) error { delete(r.ops, id); return nil }

// fakeTxRunner ejecuta el callback directo con los fakes (sin transacción real).
type fakeTxRunner struct {
	txnRepo     *fakeTxnRepo
	productRepo *fakeProductRepo
	opRepo      *fakeOpRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	txnRepo repository.StockTransactionRepository,
	productRepo repository.ProductRepository,
	opRepo repository.ImportOperationRepository,
) error) error {
	return fn(f.txnRepo, f.productRepo, f.opRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID = "company-1"
	testUserID    = "user-1"
)

func demoProduct(id, sku string) *entity.Product {
	return &entity.Product{
		ID:             id,
		CompanyID:      testCompanyID,
		SKU:            sku,
		Name:           "Producto " + sku,
		CurrentStock:   decimal.Zero,
		AvgConsumption: decimal.Zero,
	}
}

func testEnv(products ...*entity.Product) (*fakeTxRunner, *fakeProductRepo, *fakeTxnRepo, *fakeOpRepo) {
	productRepo := newFakeProductRepo(products...)
	txnRepo := &fakeTxnRepo{}
	opRepo := newFakeOpRepo()
	return &fakeTxRunner{txnRepo: txnRepo, productRepo: productRepo, opRepo: opRepo},
		productRepo, txnRepo, opRepo
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterTransactionUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_InsertaYRecalculaEnMismaOperacion(t *testing.T) {
	product := demoProduct("p1", "SKU-1")
	runner, productRepo, txnRepo, _ := testEnv(product)
	uc := NewRegisterTransactionUseCase(runner, productRepo)

	_, err := uc.Register(context.Background(), testCompanyID, testUserID, "p1", dto.RegisterTransactionRequest{
		Type: "IN", Quantity: d("10"), Date: "2026-01-10",
	})
	require.NoError(t, err)

	resp, err := uc.Register(context.Background(), testCompanyID, testUserID, "p1", dto.RegisterTransactionRequest{
		Type: "OUT", Quantity: d("3.5"), Date: "2026-01-15", IncludeInAvg: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "OUT", resp.Type)

	assert.Len(t, txnRepo.txns, 2)
	// Derivados recalculados y persistidos tras cada registro
	assert.True(t, product.CurrentStock.Equal(d("6.5")),
		"stock esperado 6.5, obtenido %s", product.CurrentStock)
	assert.True(t, product.AvgConsumption.Equal(d("3.5")),
		"consumo promedio esperado 3.5, obtenido %s", product.AvgConsumption)
}

func TestRegister_EntradaNuncaParticipaEnPromedio(t *testing.T) {
	product := demoProduct("p1", "SKU-1")
	runner, productRepo, txnRepo, _ := testEnv(product)
	uc := NewRegisterTransactionUseCase(runner, productRepo)

	// include_in_avg viene en true pero el tipo es IN: se fuerza a false
	resp, err := uc.Register(context.Background(), testCompanyID, testUserID, "p1", dto.RegisterTransactionRequest{
		Type: "IN", Quantity: d("5"), Date: "2026-02-01", IncludeInAvg: true,
	})
	require.NoError(t, err)
	assert.False(t, resp.IncludeInAvg)
	assert.False(t, txnRepo.txns[0].IncludeInAvg)
}

func TestRegister_ValidacionesDeEntrada(t *testing.T) {
	product := demoProduct("p1", "SKU-1")
	runner, productRepo, _, _ := testEnv(product)
	uc := NewRegisterTransactionUseCase(runner, productRepo)
	ctx := context.Background()

	casos := []struct {
		nombre string
		req    dto.RegisterTransactionRequest
	}{
		{"tipo desconocido", dto.RegisterTransactionRequest{Type: "TRANSFER", Quantity: d("1"), Date: "2026-01-01"}},
		{"cantidad negativa en IN", dto.RegisterTransactionRequest{Type: "IN", Quantity: d("-2"), Date: "2026-01-01"}},
		{"cantidad negativa en OUT", dto.RegisterTransactionRequest{Type: "OUT", Quantity: d("-2"), Date: "2026-01-01"}},
		{"correccion cero", dto.RegisterTransactionRequest{Type: "CORRECTION", Quantity: d("0"), Date: "2026-01-01"}},
		{"fecha invalida", dto.RegisterTransactionRequest{Type: "IN", Quantity: d("1"), Date: "01/01/2026"}},
	}
	for _, c := range casos {
		_, err := uc.Register(ctx, testCompanyID, testUserID, "p1", c.req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, c.nombre)
	}
}

func TestRegister_ProductoDeOtraEmpresa_Forbidden(t *testing.T) {
	product := demoProduct("p1", "SKU-1")
	runner, productRepo, _, _ := testEnv(product)
	uc := NewRegisterTransactionUseCase(runner, productRepo)

	_, err := uc.Register(context.Background(), "otra-empresa", testUserID, "p1", dto.RegisterTransactionRequest{
		Type: "IN", Quantity: d("1"), Date: "2026-01-01",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecomputeUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestRecompute_CorrigeDerivadosDesfasados(t *testing.T) {
	product := demoProduct("p1", "SKU-1")
	// Derivados manipulados fuera del camino de escritura
	product.CurrentStock = d("999")
	product.AvgConsumption = d("999")

	runner, productRepo, txnRepo, _ := testEnv(product)
	txnRepo.txns = []*entity.StockTransaction{
		{ID: "t1", ProductID: "p1", Type: "IN", Quantity: d("20"), Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "t2", ProductID: "p1", Type: "OUT", Quantity: d("4"), Date: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), IncludeInAvg: true},
		{ID: "t3", ProductID: "p1", Type: "CORRECTION", Quantity: d("-1.25"), Date: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)},
	}

	uc := NewRecomputeUseCase(runner, productRepo)
	resp, err := uc.Recompute(context.Background(), testCompanyID, "p1")
	require.NoError(t, err)

	assert.True(t, resp.CurrentStock.Equal(d("14.75")),
		"stock esperado 14.75, obtenido %s", resp.CurrentStock)
	assert.True(t, resp.AvgConsumption.Equal(d("4")),
		"consumo promedio esperado 4, obtenido %s", resp.AvgConsumption)
	assert.True(t, product.CurrentStock.Equal(d("14.75")), "el derivado debe quedar persistido")
}

func TestRecompute_ProductoInexistente_NotFound(t *testing.T) {
	runner, productRepo, _, _ := testEnv()
	uc := NewRecomputeUseCase(runner, productRepo)

	_, err := uc.Recompute(context.Background(), testCompanyID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// BulkImportUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestImportCSV_ImportaYRecalculaProductosTocados(t *testing.T) {
	p1 := demoProduct("p1", "SKU-1")
	p2 := demoProduct("p2", "SKU-2")
	runner, productRepo, txnRepo, opRepo := testEnv(p1, p2)
	uc := NewBulkImportUseCase(runner, productRepo, opRepo)

	csv := "sku,type,quantity,date,include_in_avg\n" +
		"SKU-1,IN,10,2026-01-05,\n" +
		"SKU-1,OUT,2,2026-01-10,true\n" +
		"SKU-2,IN,7.5,2026-01-06,false\n"

	result, err := uc.ImportCSV(context.Background(), testCompanyID, testUserID, "carga.csv", []byte(csv))
	require.NoError(t, err)
	require.Empty(t, result.Errors)

	assert.Equal(t, 3, result.RowsImported)
	assert.Equal(t, 2, result.ProductsTouched)
	assert.NotEmpty(t, result.OperationID)
	assert.Len(t, txnRepo.txns, 3)

	// Todos los asientos quedan ligados a la operación
	for _, txn := range txnRepo.txns {
		assert.Equal(t, result.OperationID, txn.OperationID)
	}
	assert.True(t, p1.CurrentStock.Equal(d("8")), "stock SKU-1 esperado 8, obtenido %s", p1.CurrentStock)
	assert.True(t, p2.CurrentStock.Equal(d("7.5")), "stock SKU-2 esperado 7.5, obtenido %s", p2.CurrentStock)
}

func TestImportCSV_FilaInvalida_NoEscribeNada(t *testing.T) {
	p1 := demoProduct("p1", "SKU-1")
	runner, productRepo, txnRepo, opRepo := testEnv(p1)
	uc := NewBulkImportUseCase(runner, productRepo, opRepo)

	csv := "sku,type,quantity,date,include_in_avg\n" +
		"SKU-1,IN,10,2026-01-05,\n" +
		"SKU-INEXISTENTE,OUT,2,2026-01-10,true\n" +
		"SKU-1,IN,no-numero,2026-01-11,\n"

	result, err := uc.ImportCSV(context.Background(), testCompanyID, testUserID, "carga.csv", []byte(csv))
	require.NoError(t, err)

	// Reporte por fila: SKU inexistente (fila 2) y cantidad inválida (fila 3)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Equal(t, 3, result.Errors[1].Row)

	// Atómico: ninguna fila válida se escribió
	assert.Empty(t, txnRepo.txns)
	assert.Empty(t, opRepo.ops)
	assert.True(t, p1.CurrentStock.IsZero())
}

func TestImportCSV_HeaderIncorrecto_Rechaza(t *testing.T) {
	runner, productRepo, _, opRepo := testEnv(demoProduct("p1", "SKU-1"))
	uc := NewBulkImportUseCase(runner, productRepo, opRepo)

	csv := "codigo,tipo,cantidad\nSKU-1,IN,10\n"
	_, err := uc.ImportCSV(context.Background(), testCompanyID, testUserID, "carga.csv", []byte(csv))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRollback_EliminaOperacionYRecalcula(t *testing.T) {
	p1 := demoProduct("p1", "SKU-1")
	runner, productRepo, txnRepo, opRepo := testEnv(p1)
	uc := NewBulkImportUseCase(runner, productRepo, opRepo)

	// Estado previo: un asiento manual que debe sobrevivir al rollback
	manual := &entity.StockTransaction{
		ID: "manual-1", CompanyID: testCompanyID, ProductID: "p1",
		Type: "IN", Quantity: d("3"), Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	txnRepo.txns = append(txnRepo.txns, manual)

	csv := "sku,type,quantity,date,include_in_avg\n" +
		"SKU-1,IN,10,2026-01-05,\n" +
		"SKU-1,OUT,2,2026-01-10,true\n"
	imported, err := uc.ImportCSV(context.Background(), testCompanyID, testUserID, "carga.csv", []byte(csv))
	require.NoError(t, err)
	require.True(t, p1.CurrentStock.Equal(d("11")))

	result, err := uc.Rollback(context.Background(), testCompanyID, imported.OperationID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.RowsDeleted)
	assert.Equal(t, 1, result.ProductsRecomputed)
	// Solo queda el asiento manual y el derivado vuelve a reflejarlo
	require.Len(t, txnRepo.txns, 1)
	assert.Equal(t, "manual-1", txnRepo.txns[0].ID)
	assert.True(t, p1.CurrentStock.Equal(d("3")),
		"stock esperado 3 tras rollback, obtenido %s", p1.CurrentStock)
	assert.Empty(t, opRepo.ops, "la operación revertida debe eliminarse")
}

func TestRollback_OperacionDeOtraEmpresa_Forbidden(t *testing.T) {
	runner, productRepo, _, opRepo := testEnv()
	opRepo.ops["op-1"] = &entity.ImportOperation{ID: "op-1", CompanyID: "otra-empresa"}
	uc := NewBulkImportUseCase(runner, productRepo, opRepo)

	_, err := uc.Rollback(context.Background(), testCompanyID, "op-1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
