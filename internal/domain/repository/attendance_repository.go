package repository

import (
	"time"

	"github.com/davidrt/ventastock-api/internal/domain/entity"
)

// AttendanceRepository define el puerto de persistencia para Attendance.
type AttendanceRepository interface {
	Create(att *entity.Attendance) error
	// GetOpenByUser devuelve la jornada abierta (sin check-out) del usuario, o nil.
	GetOpenByUser(userID string) (*entity.Attendance, error)
	CloseAttendance(id string, checkOut time.Time) error
	ListByCompany(companyID, userID string, from, to *time.Time, limit, offset int) ([]*entity.Attendance, error)
}
