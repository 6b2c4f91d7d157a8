package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/davidrt/ventastock-api/internal/domain/entity"
	"github.com/davidrt/ventastock-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo implementación de AttendanceRepository sobre PostgreSQL (usable con pool o tx).
type AttendanceRepo struct {
	q Querier
}

// NewAttendanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

// Create persiste una jornada nueva (check-in, sin check-out).
func (r *AttendanceRepo) Create(att *entity.Attendance) error {
	query := `
		INSERT INTO attendance (id, company_id, user_id, check_in, check_out, location, created_at)
		VALUES ($1, $2, $3, $4, NULL, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		att.ID, att.CompanyID, att.UserID, att.CheckIn, att.Location, att.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

// GetOpenByUser devuelve la jornada abierta del usuario, o nil si no hay.
func (r *AttendanceRepo) GetOpenByUser(userID string) (*entity.Attendance, error) {
	query := `
		SELECT id, company_id, user_id, check_in, check_out, location, created_at
		FROM attendance WHERE user_id = $1 AND check_out IS NULL
		ORDER BY check_in DESC LIMIT 1`
	att, err := scanAttendance(r.q.QueryRow(context.Background(), query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open attendance: %w", err)
	}
	return att, nil
}

// CloseAttendance registra el check-out de una jornada.
func (r *AttendanceRepo) CloseAttendance(id string, checkOut time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE attendance SET check_out = $2 WHERE id = $1 AND check_out IS NULL`, id, checkOut)
	if err != nil {
		return fmt.Errorf("close attendance: %w", err)
	}
	return nil
}

// ListByCompany lista jornadas de la empresa, opcionalmente por usuario y rango de fechas.
func (r *AttendanceRepo) ListByCompany(companyID, userID string, from, to *time.Time, limit, offset int) ([]*entity.Attendance, error) {
	query := `
		SELECT id, company_id, user_id, check_in, check_out, location, created_at
		FROM attendance WHERE company_id = $1`
	args := []any{companyID}
	pos := 2
	if userID != "" {
		query += fmt.Sprintf(" AND user_id = $%d", pos)
		args = append(args, userID)
		pos++
	}
	if from != nil {
		query += fmt.Sprintf(" AND check_in >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND check_in <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY check_in DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()
	var list []*entity.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		list = append(list, att)
	}
	return list, rows.Err()
}

func scanAttendance(row pgx.Row) (*entity.Attendance, error) {
	var a entity.Attendance
	var checkOut *time.Time
	if err := row.Scan(&a.ID, &a.CompanyID, &a.UserID, &a.CheckIn, &checkOut, &a.Location, &a.CreatedAt); err != nil {
		return nil, err
	}
	if checkOut != nil {
		a.CheckOut = *checkOut
	}
	return &a, nil
}
