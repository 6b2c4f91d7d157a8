package crm

import (
	"time"

	"github.com/google/uuid"

	"github.com/davidrt/ventastock-api/internal/application/dto"
	"github.com/davidrt/ventastock-api/internal/domain"
	"github.com/davidrt/ventastock-api/internal/domain/entity"
	"github.com/davidrt/ventastock-api/internal/domain/repository"
)

// Transiciones de estado permitidas para un lead.
var leadTransitions = map[string][]string{
	entity.LeadStatusNew:       {entity.LeadStatusContacted, entity.LeadStatusLost},
	entity.LeadStatusContacted: {entity.LeadStatusQualified, entity.LeadStatusLost},
	entity.LeadStatusQualified: {entity.LeadStatusWon, entity.LeadStatusLost},
}

// LeadUseCase casos de uso del pipeline de prospectos.
type LeadUseCase struct {
	repo repository.LeadRepository
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(repo repository.LeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

// Create registra un lead nuevo en estado "new", asignado al vendedor indicado
// o al usuario autenticado si no se indica.
func (uc *LeadUseCase) Create(companyID, userID string, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	assignedTo := in.AssignedTo
	if assignedTo == "" {
		assignedTo = userID
	}
	now := time.Now()
	lead := &entity.Lead{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		AssignedTo: assignedTo,
		Name:       in.Name,
		Phone:      in.Phone,
		Email:      in.Email,
		Source:     in.Source,
		Status:     entity.LeadStatusNew,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// UpdateStatus avanza el lead en el pipeline validando la transición.
func (uc *LeadUseCase) UpdateStatus(companyID, leadID string, in dto.UpdateLeadStatusRequest) (*dto.LeadResponse, error) {
	lead, err := uc.repo.GetByID(leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	if lead.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if !transitionAllowed(lead.Status, in.Status) {
		return nil, domain.ErrConflict
	}
	if err := uc.repo.UpdateStatus(leadID, in.Status, in.Notes); err != nil {
		return nil, err
	}
	lead.Status = in.Status
	if in.Notes != "" {
		lead.Notes = in.Notes
	}
	lead.UpdatedAt = time.Now()
	return toLeadResponse(lead), nil
}

// List lista leads de la empresa, opcionalmente filtrados por estado.
func (uc *LeadUseCase) List(companyID, status string, page dto.PageRequest) ([]*dto.LeadResponse, error) {
	page.DefaultPage()
	leads, err := uc.repo.ListByCompany(companyID, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, toLeadResponse(l))
	}
	return out, nil
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range leadTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func toLeadResponse(l *entity.Lead) *dto.LeadResponse {
	return &dto.LeadResponse{
		ID:         l.ID,
		Name:       l.Name,
		Phone:      l.Phone,
		Email:      l.Email,
		Source:     l.Source,
		Status:     l.Status,
		AssignedTo: l.AssignedTo,
		Notes:      l.Notes,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}
