package dto

import "time"

// CreateLeadRequest alta de un prospecto comercial.
type CreateLeadRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Source     string `json:"source"`
	AssignedTo string `json:"assigned_to"` // vacío = el usuario autenticado
	Notes      string `json:"notes"`
}

// UpdateLeadStatusRequest transición de estado de un lead.
type UpdateLeadStatusRequest struct {
	Status string `json:"status"` // new, contacted, qualified, won, lost
	Notes  string `json:"notes"`
}

// LeadResponse representación de salida de un lead.
type LeadResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Source     string    `json:"source,omitempty"`
	Status     string    `json:"status"`
	AssignedTo string    `json:"assigned_to"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateVisitRequest registro de visita a distribuidor.
// VisitedAt usa formato YYYY-MM-DD; vacío = hoy.
type CreateVisitRequest struct {
	DealerName string `json:"dealer_name"`
	Location   string `json:"location"`
	Purpose    string `json:"purpose"`
	Notes      string `json:"notes"`
	VisitedAt  string `json:"visited_at"`
}

// VisitResponse representación de salida de una visita.
type VisitResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	DealerName string    `json:"dealer_name"`
	Location   string    `json:"location,omitempty"`
	Purpose    string    `json:"purpose,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	VisitedAt  time.Time `json:"visited_at"`
}

// CheckInRequest apertura de jornada.
type CheckInRequest struct {
	Location string `json:"location"`
}

// AttendanceResponse representación de salida de una jornada.
type AttendanceResponse struct {
	ID       string     `json:"id"`
	UserID   string     `json:"user_id"`
	CheckIn  time.Time  `json:"check_in"`
	CheckOut *time.Time `json:"check_out,omitempty"`
	Location string     `json:"location,omitempty"`
	Open     bool       `json:"open"`
}
