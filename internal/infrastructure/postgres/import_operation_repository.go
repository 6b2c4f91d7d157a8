package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/davidrt/ventastock-api/internal/domain/entity"
	"github.com/davidrt/ventastock-api/internal/domain/repository"
)

var _ repository.ImportOperationRepository = (*ImportOperationRepo)(nil)

// ImportOperationRepo implementación sobre PostgreSQL (usable con pool o tx).
type ImportOperationRepo struct {
	q Querier
}

// NewImportOperationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewImportOperationRepository(q Querier) *ImportOperationRepo {
	return &ImportOperationRepo{q: q}
}

// Create persiste una operación de importación.
func (r *ImportOperationRepo) Create(op *entity.ImportOperation) error {
	query := `
		INSERT INTO import_operations (id, company_id, file_name, row_count, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		op.ID, op.CompanyID, op.FileName, op.RowCount, op.CreatedAt, nullable(op.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("create import operation: %w", err)
	}
	return nil
}

// GetByID obtiene una operación por ID.
func (r *ImportOperationRepo) GetByID(id string) (*entity.ImportOperation, error) {
	query := `
		SELECT id, company_id, file_name, row_count, created_at, created_by
		FROM import_operations WHERE id = $1`
	var op entity.ImportOperation
	var createdBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&op.ID, &op.CompanyID, &op.FileName, &op.RowCount, &op.CreatedAt, &createdBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get import operation: %w", err)
	}
	if createdBy != nil {
		op.CreatedBy = *createdBy
	}
	return &op, nil
}

// ListByCompany lista operaciones de una empresa, más reciente primero.
func (r *ImportOperationRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.ImportOperation, error) {
	query := `
		SELECT id, company_id, file_name, row_count, created_at, created_by
		FROM import_operations WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list import operations: %w", err)
	}
	defer rows.Close()
	var list []*entity.ImportOperation
	for rows.Next() {
		var op entity.ImportOperation
		var createdBy *string
		if err := rows.Scan(&op.ID, &op.CompanyID, &op.FileName, &op.RowCount, &op.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan import operation: %w", err)
		}
		if createdBy != nil {
			op.CreatedBy = *createdBy
		}
		list = append(list, &op)
	}
	return list, rows.Err()
}

// Delete elimina una operación (las transacciones se borran antes, en la misma tx).
func (r *ImportOperationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM import_operations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete import operation: %w", err)
	}
	return nil
}
