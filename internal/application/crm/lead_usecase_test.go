package crm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrt/ventastock-api/internal/application/dto"
	"github.com/davidrt/ventastock-api/internal/domain"
	"github.com/davidrt/ventastock-api/internal/domain/entity"
)

type fakeLeadRepo struct {
	leads map[string]*entity.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[string]*entity.Lead)}
}

func (r *fakeLeadRepo) Create(l *entity.Lead) error { r.leads[l.ID] = l; return nil }
func (r *fakeLeadRepo) GetByID(id string) (*entity.Lead, error) {
	return r.leads[id], nil
}
func (r *fakeLeadRepo) UpdateStatus(id, status, notes string) error {
	l := r.leads[id]
	l.Status = status
	if notes != "" {
		l.Notes = notes
	}
	return nil
}
func (r *fakeLeadRepo) ListByCompany(companyID, status string, limit, offset int) ([]*entity.Lead, error) {
	var out []*entity.Lead
	for _, l := range r.leads {
		if l.CompanyID != companyID {
			continue
		}
		if status != "" && l.Status != status {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func TestLead_CreaEnEstadoNewAsignadoAlUsuario(t *testing.T) {
	uc := NewLeadUseCase(newFakeLeadRepo())

	lead, err := uc.Create("company-1", "user-1", dto.CreateLeadRequest{Name: "Ferretería El Tornillo"})
	require.NoError(t, err)

	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	assert.Equal(t, "user-1", lead.AssignedTo, "sin assigned_to explícito se asigna al usuario autenticado")
}

func TestLead_PipelineCompletoHastaWon(t *testing.T) {
	repo := newFakeLeadRepo()
	uc := NewLeadUseCase(repo)

	lead, err := uc.Create("company-1", "user-1", dto.CreateLeadRequest{Name: "Distribuidora Norte"})
	require.NoError(t, err)

	for _, status := range []string{
		entity.LeadStatusContacted,
		entity.LeadStatusQualified,
		entity.LeadStatusWon,
	} {
		lead, err = uc.UpdateStatus("company-1", lead.ID, dto.UpdateLeadStatusRequest{Status: status})
		require.NoError(t, err, "transición a %s debe permitirse", status)
		assert.Equal(t, status, lead.Status)
	}
}

func TestLead_TransicionInvalida_Conflict(t *testing.T) {
	repo := newFakeLeadRepo()
	uc := NewLeadUseCase(repo)

	lead, err := uc.Create("company-1", "user-1", dto.CreateLeadRequest{Name: "Cliente Saltarín"})
	require.NoError(t, err)

	// new → won se salta contacted y qualified
	_, err = uc.UpdateStatus("company-1", lead.ID, dto.UpdateLeadStatusRequest{Status: entity.LeadStatusWon})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLead_EstadoTerminalNoAdmiteTransiciones(t *testing.T) {
	repo := newFakeLeadRepo()
	uc := NewLeadUseCase(repo)

	lead, err := uc.Create("company-1", "user-1", dto.CreateLeadRequest{Name: "Cliente Perdido"})
	require.NoError(t, err)
	_, err = uc.UpdateStatus("company-1", lead.ID, dto.UpdateLeadStatusRequest{Status: entity.LeadStatusLost})
	require.NoError(t, err)

	_, err = uc.UpdateStatus("company-1", lead.ID, dto.UpdateLeadStatusRequest{Status: entity.LeadStatusContacted})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestLead_DeOtraEmpresa_Forbidden(t *testing.T) {
	repo := newFakeLeadRepo()
	repo.leads["l1"] = &entity.Lead{ID: "l1", CompanyID: "otra-empresa", Status: entity.LeadStatusNew}
	uc := NewLeadUseCase(repo)

	_, err := uc.UpdateStatus("company-1", "l1", dto.UpdateLeadStatusRequest{Status: entity.LeadStatusContacted})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
