package entity

import "time"

// Attendance registra la jornada de un vendedor: check-in al iniciar y
// check-out al terminar. CheckOut en cero significa jornada abierta.
type Attendance struct {
	ID        string
	CompanyID string
	UserID    string
	CheckIn   time.Time
	CheckOut  time.Time
	Location  string // ubicación reportada en el check-in
	CreatedAt time.Time
}

// Open indica si la jornada sigue abierta (sin check-out).
func (a *Attendance) Open() bool { return a.CheckOut.IsZero() }
