package crm

import (
	"time"

	"github.com/google/uuid"

	"github.com/davidrt/ventastock-api/internal/application/dto"
	"github.com/davidrt/ventastock-api/internal/domain"
	"github.com/davidrt/ventastock-api/internal/domain/entity"
	"github.com/davidrt/ventastock-api/internal/domain/repository"
)

// AttendanceUseCase jornadas de los vendedores: check-in y check-out.
type AttendanceUseCase struct {
	repo repository.AttendanceRepository
}

// NewAttendanceUseCase construye el caso de uso.
func NewAttendanceUseCase(repo repository.AttendanceRepository) *AttendanceUseCase {
	return &AttendanceUseCase{repo: repo}
}

// CheckIn abre la jornada del usuario. Falla con ErrConflict si ya hay una abierta.
func (uc *AttendanceUseCase) CheckIn(companyID, userID string, in dto.CheckInRequest) (*dto.AttendanceResponse, error) {
	open, err := uc.repo.GetOpenByUser(userID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	att := &entity.Attendance{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		UserID:    userID,
		CheckIn:   now,
		Location:  in.Location,
		CreatedAt: now,
	}
	if err := uc.repo.Create(att); err != nil {
		return nil, err
	}
	return toAttendanceResponse(att), nil
}

// CheckOut cierra la jornada abierta del usuario. ErrNotFound si no hay ninguna.
func (uc *AttendanceUseCase) CheckOut(companyID, userID string) (*dto.AttendanceResponse, error) {
	open, err := uc.repo.GetOpenByUser(userID)
	if err != nil {
		return nil, err
	}
	if open == nil || open.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if err := uc.repo.CloseAttendance(open.ID, now); err != nil {
		return nil, err
	}
	open.CheckOut = now
	return toAttendanceResponse(open), nil
}

// List lista jornadas de la empresa, opcionalmente por usuario y rango de fechas.
func (uc *AttendanceUseCase) List(companyID, userID string, from, to *time.Time, page dto.PageRequest) ([]*dto.AttendanceResponse, error) {
	page.DefaultPage()
	atts, err := uc.repo.ListByCompany(companyID, userID, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AttendanceResponse, 0, len(atts))
	for _, a := range atts {
		out = append(out, toAttendanceResponse(a))
	}
	return out, nil
}

func toAttendanceResponse(a *entity.Attendance) *dto.AttendanceResponse {
	resp := &dto.AttendanceResponse{
		ID:       a.ID,
		UserID:   a.UserID,
		CheckIn:  a.CheckIn,
		Location: a.Location,
		Open:     a.Open(),
	}
	if !a.CheckOut.IsZero() {
		out := a.CheckOut
		resp.CheckOut = &out
	}
	return resp
}
