package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterTransactionRequest asiento manual sobre el libro de un producto.
// Date usa formato YYYY-MM-DD (fecha efectiva del movimiento).
type RegisterTransactionRequest struct {
	Type         string          `json:"type"` // IN | OUT | CORRECTION
	Quantity     decimal.Decimal `json:"quantity"`
	Date         string          `json:"date"`
	IncludeInAvg bool            `json:"include_in_avg"`
}

// TransactionResponse representación de salida de un asiento del libro.
type TransactionResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	OperationID  string          `json:"operation_id,omitempty"`
	Type         string          `json:"type"`
	Quantity     decimal.Decimal `json:"quantity"`
	Date         time.Time       `json:"date"`
	IncludeInAvg bool            `json:"include_in_avg"`
	CreatedAt    time.Time       `json:"created_at"`
	CreatedBy    string          `json:"created_by,omitempty"`
}

// RecomputeResponse resultado de una recomputación forzada.
type RecomputeResponse struct {
	ProductID      string          `json:"product_id"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	AvgConsumption decimal.Decimal `json:"avg_consumption"`
}
