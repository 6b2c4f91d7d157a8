package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardSummary agrega los totales que consume el tablero.
type DashboardSummary struct {
	TotalProducts   int
	TotalStockValue decimal.Decimal // Σ current_stock * price
	OpenLeads       int
	VisitsThisMonth int
	OpenAttendances int
}

// DashboardRepository define el puerto de agregaciones SQL para el tablero.
type DashboardRepository interface {
	GetSummary(ctx context.Context, companyID string) (*DashboardSummary, error)
}
