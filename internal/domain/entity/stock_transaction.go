package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockTransaction es un asiento inmutable del libro de inventario de un producto
// (entrada IN, consumo OUT o ajuste CORRECTION). Se crea por registro manual,
// importación masiva o carga externa; nunca se modifica después de creado y solo
// se elimina como parte del rollback de una operación de importación.
type StockTransaction struct {
	ID           string
	CompanyID    string
	ProductID    string
	OperationID  string          // ID de la operación de importación que lo creó; vacío si fue manual
	Type         string          // ledger.KindReceipt, ledger.KindConsumption, ledger.KindCorrection
	Quantity     decimal.Decimal // no negativa para IN/OUT; con signo para CORRECTION
	Date         time.Time       // fecha efectiva del movimiento (no la de inserción)
	IncludeInAvg bool            // solo relevante en OUT: participa en el consumo promedio
	CreatedAt    time.Time
	CreatedBy    string
}
