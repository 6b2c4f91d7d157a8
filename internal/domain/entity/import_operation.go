package entity

import "time"

// ImportOperation agrupa las transacciones creadas por una importación masiva CSV.
// Sirve como unidad de rollback: eliminar la operación borra sus transacciones y
// dispara la recomputación de los productos afectados.
type ImportOperation struct {
	ID        string
	CompanyID string
	FileName  string
	RowCount  int
	CreatedAt time.Time
	CreatedBy string
}
