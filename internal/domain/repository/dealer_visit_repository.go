package repository

import (
	"time"

	"github.com/davidrt/ventastock-api/internal/domain/entity"
)

// DealerVisitRepository define el puerto de persistencia para DealerVisit.
type DealerVisitRepository interface {
	Create(visit *entity.DealerVisit) error
	ListByCompany(companyID, userID string, from, to *time.Time, limit, offset int) ([]*entity.DealerVisit, error)
}
