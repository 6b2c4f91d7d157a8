package postgres

import (
	"context"
	"fmt"

	"github.com/davidrt/ventastock-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo agregaciones SQL para el tablero (usable con pool o tx).
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// GetSummary calcula los totales del tablero en una sola consulta por bloque.
// El valor de stock usa el current_stock materializado: el libro ya lo mantiene
// consistente, no hace falta re-agregar transacciones aquí.
func (r *DashboardRepo) GetSummary(ctx context.Context, companyID string) (*repository.DashboardSummary, error) {
	var s repository.DashboardSummary

	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(current_stock * price), 0)
		FROM products WHERE company_id = $1`, companyID,
	).Scan(&s.TotalProducts, &s.TotalStockValue)
	if err != nil {
		return nil, fmt.Errorf("dashboard products: %w", err)
	}

	err = r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM leads
		WHERE company_id = $1 AND status NOT IN ('won', 'lost')`, companyID,
	).Scan(&s.OpenLeads)
	if err != nil {
		return nil, fmt.Errorf("dashboard leads: %w", err)
	}

	err = r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM dealer_visits
		WHERE company_id = $1 AND date_trunc('month', visited_at) = date_trunc('month', now())`, companyID,
	).Scan(&s.VisitsThisMonth)
	if err != nil {
		return nil, fmt.Errorf("dashboard visits: %w", err)
	}

	err = r.q.QueryRow(ctx, `
		SELECT COUNT(*) FROM attendance
		WHERE company_id = $1 AND check_out IS NULL`, companyID,
	).Scan(&s.OpenAttendances)
	if err != nil {
		return nil, fmt.Errorf("dashboard attendance: %w", err)
	}

	return &s, nil
}
