package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Kind clasifica un movimiento del libro de inventario.
type Kind string

// Tipos de movimiento del libro.
const (
	KindReceipt     Kind = "IN"         // entrada de stock
	KindConsumption Kind = "OUT"        // consumo de stock
	KindCorrection  Kind = "CORRECTION" // ajuste manual (con signo)
)

// Posting es un asiento inmutable del libro de inventario de un producto.
// CountsTowardRate solo aplica a consumos: marca si el asiento participa en el
// cálculo de consumo promedio. Las correcciones nunca participan, por construcción.
type Posting struct {
	Kind             Kind
	Quantity         decimal.Decimal
	Date             time.Time
	CountsTowardRate bool
}

// NewReceipt construye una entrada de stock. La cantidad no puede ser negativa.
func NewReceipt(quantity decimal.Decimal, date time.Time) (Posting, error) {
	if quantity.IsNegative() {
		return Posting{}, fmt.Errorf("ledger: cantidad negativa en entrada: %s", quantity)
	}
	return Posting{Kind: KindReceipt, Quantity: quantity, Date: date}, nil
}

// NewConsumption construye un consumo de stock. La cantidad no puede ser negativa.
// countsTowardRate indica si el asiento entra en el consumo promedio mensual.
func NewConsumption(quantity decimal.Decimal, date time.Time, countsTowardRate bool) (Posting, error) {
	if quantity.IsNegative() {
		return Posting{}, fmt.Errorf("ledger: cantidad negativa en consumo: %s", quantity)
	}
	return Posting{Kind: KindConsumption, Quantity: quantity, Date: date, CountsTowardRate: countsTowardRate}, nil
}

// NewCorrection construye un ajuste manual. La cantidad puede ser positiva o negativa.
func NewCorrection(quantity decimal.Decimal, date time.Time) Posting {
	return Posting{Kind: KindCorrection, Quantity: quantity, Date: date}
}

// ParseKind valida un tipo de movimiento recibido desde fuera (API, CSV, DB).
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindReceipt, KindConsumption, KindCorrection:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("ledger: tipo de movimiento desconocido: %q", s)
	}
}
