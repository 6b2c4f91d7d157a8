package repository

import "github.com/davidrt/ventastock-api/internal/domain/entity"

// ImportOperationRepository define el puerto de persistencia de operaciones de importación.
type ImportOperationRepository interface {
	Create(op *entity.ImportOperation) error
	GetByID(id string) (*entity.ImportOperation, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.ImportOperation, error)
	Delete(id string) error
}
