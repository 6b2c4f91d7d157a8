package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO totales para el tablero principal.
type DashboardSummaryDTO struct {
	TotalProducts   int             `json:"total_products"`
	TotalStockValue decimal.Decimal `json:"total_stock_value"`
	OpenLeads       int             `json:"open_leads"`
	VisitsThisMonth int             `json:"visits_this_month"`
	OpenAttendances int             `json:"open_attendances"`
}
