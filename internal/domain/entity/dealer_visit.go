package entity

import "time"

// DealerVisit registra la visita de un vendedor a un distribuidor o punto de venta.
type DealerVisit struct {
	ID         string
	CompanyID  string
	UserID     string // vendedor que realizó la visita
	DealerName string
	Location   string
	Purpose    string
	Notes      string
	VisitedAt  time.Time
	CreatedAt  time.Time
}
