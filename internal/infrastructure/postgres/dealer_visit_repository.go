package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/davidrt/ventastock-api/internal/domain/entity"
	"github.com/davidrt/ventastock-api/internal/domain/repository"
)

var _ repository.DealerVisitRepository = (*DealerVisitRepo)(nil)

// DealerVisitRepo implementación de DealerVisitRepository sobre PostgreSQL (usable con pool o tx).
type DealerVisitRepo struct {
	q Querier
}

// NewDealerVisitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDealerVisitRepository(q Querier) *DealerVisitRepo {
	return &DealerVisitRepo{q: q}
}

// Create persiste una visita.
func (r *DealerVisitRepo) Create(visit *entity.DealerVisit) error {
	query := `
		INSERT INTO dealer_visits (id, company_id, user_id, dealer_name, location, purpose, notes, visited_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		visit.ID, visit.CompanyID, visit.UserID, visit.DealerName, visit.Location,
		visit.Purpose, visit.Notes, visit.VisitedAt, visit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert dealer visit: %w", err)
	}
	return nil
}

// ListByCompany lista visitas de la empresa, opcionalmente por vendedor y rango de fechas.
func (r *DealerVisitRepo) ListByCompany(companyID, userID string, from, to *time.Time, limit, offset int) ([]*entity.DealerVisit, error) {
	query := `
		SELECT id, company_id, user_id, dealer_name, location, purpose, notes, visited_at, created_at
		FROM dealer_visits WHERE company_id = $1`
	args := []any{companyID}
	pos := 2
	if userID != "" {
		query += fmt.Sprintf(" AND user_id = $%d", pos)
		args = append(args, userID)
		pos++
	}
	if from != nil {
		query += fmt.Sprintf(" AND visited_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND visited_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY visited_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list dealer visits: %w", err)
	}
	defer rows.Close()
	var list []*entity.DealerVisit
	for rows.Next() {
		var v entity.DealerVisit
		if err := rows.Scan(&v.ID, &v.CompanyID, &v.UserID, &v.DealerName, &v.Location,
			&v.Purpose, &v.Notes, &v.VisitedAt, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan dealer visit: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
