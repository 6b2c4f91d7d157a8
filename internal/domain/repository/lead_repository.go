package repository

import "github.com/davidrt/ventastock-api/internal/domain/entity"

// LeadRepository define el puerto de persistencia para Lead.
type LeadRepository interface {
	Create(lead *entity.Lead) error
	GetByID(id string) (*entity.Lead, error)
	UpdateStatus(id, status, notes string) error
	ListByCompany(companyID, status string, limit, offset int) ([]*entity.Lead, error)
}
