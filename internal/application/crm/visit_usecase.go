package crm

import (
	"time"

	"github.com/google/uuid"

	"github.com/davidrt/ventastock-api/internal/application/dto"
	"github.com/davidrt/ventastock-api/internal/domain"
	"github.com/davidrt/ventastock-api/internal/domain/entity"
	"github.com/davidrt/ventastock-api/internal/domain/repository"
)

// VisitUseCase registro y consulta de visitas a distribuidores.
type VisitUseCase struct {
	repo repository.DealerVisitRepository
}

// NewVisitUseCase construye el caso de uso.
func NewVisitUseCase(repo repository.DealerVisitRepository) *VisitUseCase {
	return &VisitUseCase{repo: repo}
}

// Create registra una visita del vendedor autenticado. VisitedAt vacío = hoy.
func (uc *VisitUseCase) Create(companyID, userID string, in dto.CreateVisitRequest) (*dto.VisitResponse, error) {
	if in.DealerName == "" {
		return nil, domain.ErrInvalidInput
	}
	visitedAt := time.Now()
	if in.VisitedAt != "" {
		parsed, err := time.Parse("2006-01-02", in.VisitedAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		visitedAt = parsed
	}
	visit := &entity.DealerVisit{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		UserID:     userID,
		DealerName: in.DealerName,
		Location:   in.Location,
		Purpose:    in.Purpose,
		Notes:      in.Notes,
		VisitedAt:  visitedAt,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(visit); err != nil {
		return nil, err
	}
	return toVisitResponse(visit), nil
}

// List lista visitas de la empresa, opcionalmente por vendedor y rango de fechas.
func (uc *VisitUseCase) List(companyID, userID string, from, to *time.Time, page dto.PageRequest) ([]*dto.VisitResponse, error) {
	page.DefaultPage()
	visits, err := uc.repo.ListByCompany(companyID, userID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VisitResponse, 0, len(visits))
	for _, v := range visits {
		out = append(out, toVisitResponse(v))
	}
	return out, nil
}

func toVisitResponse(v *entity.DealerVisit) *dto.VisitResponse {
	return &dto.VisitResponse{
		ID:         v.ID,
		UserID:     v.UserID,
		DealerName: v.DealerName,
		Location:   v.Location,
		Purpose:    v.Purpose,
		Notes:      v.Notes,
		VisitedAt:  v.VisitedAt,
	}
}
