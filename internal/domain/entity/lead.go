package entity

import "time"

// Estados válidos de un Lead.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusWon       = "won"
	LeadStatusLost      = "lost"
)

// Lead representa un prospecto comercial asignado a un vendedor.
type Lead struct {
	ID         string
	CompanyID  string
	AssignedTo string // UserID del vendedor responsable
	Name       string
	Phone      string
	Email      string
	Source     string // origen: referido, feria, web, etc.
	Status     string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
