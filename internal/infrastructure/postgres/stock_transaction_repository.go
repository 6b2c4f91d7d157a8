package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/davidrt/ventastock-api/internal/domain/entity"
	"github.com/davidrt/ventastock-api/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

const txnColumns = `id, company_id, product_id, operation_id, type, quantity, date, include_in_avg, created_at, created_by`

// StockTransactionRepo implementación del libro de inventario sobre PostgreSQL (usable con pool o tx).
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

// Create persiste un asiento del libro.
func (r *StockTransactionRepo) Create(txn *entity.StockTransaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_transactions (` + txnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		txn.ID, txn.CompanyID, txn.ProductID, nullable(txn.OperationID), txn.Type,
		txn.Quantity, txn.Date, txn.IncludeInAvg, txn.CreatedAt, nullable(txn.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("create stock transaction: %w", err)
	}
	return nil
}

// CreateBatch inserta un lote de asientos (importación masiva) fila por fila
// dentro de la transacción del caller.
func (r *StockTransactionRepo) CreateBatch(txns []*entity.StockTransaction) error {
	for _, txn := range txns {
		if err := r.Create(txn); err != nil {
			return err
		}
	}
	return nil
}

// ListAllByProduct devuelve el libro completo de un producto en orden de fecha
// ascendente. Es la entrada de la recomputación: nunca se pagina.
func (r *StockTransactionRepo) ListAllByProduct(productID string) ([]*entity.StockTransaction, error) {
	query := `SELECT ` + txnColumns + ` FROM stock_transactions WHERE product_id = $1 ORDER BY date ASC, created_at ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list all by product: %w", err)
	}
	return scanTransactions(rows)
}

// ListByProduct lista asientos de un producto en un rango de fechas, paginado.
func (r *StockTransactionRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockTransaction, error) {
	query := `SELECT ` + txnColumns + ` FROM stock_transactions WHERE product_id = $1`
	args := []any{productID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list by product: %w", err)
	}
	return scanTransactions(rows)
}

// ProductIDsByOperation devuelve los productos tocados por una operación de importación.
func (r *StockTransactionRepo) ProductIDsByOperation(operationID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT DISTINCT product_id FROM stock_transactions WHERE operation_id = $1`, operationID)
	if err != nil {
		return nil, fmt.Errorf("product ids by operation: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan product id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteByOperation elimina los asientos de una operación (rollback). Devuelve filas borradas.
func (r *StockTransactionRepo) DeleteByOperation(operationID string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM stock_transactions WHERE operation_id = $1`, operationID)
	if err != nil {
		return 0, fmt.Errorf("delete by operation: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func scanTransactions(rows pgx.Rows) ([]*entity.StockTransaction, error) {
	defer rows.Close()
	var list []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		var operationID, createdBy *string
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.ProductID, &operationID, &t.Type,
			&t.Quantity, &t.Date, &t.IncludeInAvg, &t.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		if operationID != nil {
			t.OperationID = *operationID
		}
		if createdBy != nil {
			t.CreatedBy = *createdBy
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// nullable convierte cadena vacía en NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
