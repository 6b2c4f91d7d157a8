package dto

import "time"

// ImportOperationResponse representación de salida de una operación de importación.
type ImportOperationResponse struct {
	ID        string    `json:"id"`
	FileName  string    `json:"file_name"`
	RowCount  int       `json:"row_count"`
	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by,omitempty"`
}

// ImportRowError error de validación de una fila del CSV (1-based, sin contar el header).
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResultDTO resultado de una importación masiva de transacciones.
// Si Errors no está vacío la operación completa se rechazó y no se escribió nada.
type ImportResultDTO struct {
	OperationID     string           `json:"operation_id,omitempty"`
	RowsImported    int              `json:"rows_imported"`
	ProductsTouched int              `json:"products_touched"`
	Errors          []ImportRowError `json:"errors,omitempty"`
}

// RollbackResultDTO resultado del rollback de una operación de importación.
type RollbackResultDTO struct {
	OperationID        string `json:"operation_id"`
	RowsDeleted        int64  `json:"rows_deleted"`
	ProductsRecomputed int    `json:"products_recomputed"`
}
