package usecase

import (
	"context"

	"github.com/davidrt/ventastock-api/internal/application/dto"
	"github.com/davidrt/ventastock-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen del tablero a partir de agregaciones SQL.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetSummary devuelve los totales del tablero para una empresa.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, companyID string) (*dto.DashboardSummaryDTO, error) {
	summary, err := uc.repo.GetSummary(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardSummaryDTO{
		TotalProducts:   summary.TotalProducts,
		TotalStockValue: summary.TotalStockValue,
		OpenLeads:       summary.OpenLeads,
		VisitsThisMonth: summary.VisitsThisMonth,
		OpenAttendances: summary.OpenAttendances,
	}, nil
}
