package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// CurrentStock y AvgConsumption son proyecciones materializadas del libro de
// transacciones (StockTransaction): nunca son fuente de verdad y solo las
// escribe la recomputación transaccional del módulo de inventario.
type Product struct {
	ID             string
	CompanyID      string
	SKU            string // código único por empresa
	Name           string
	Description    string
	Category       string
	UnitMeasure    string
	Price          decimal.Decimal // precio de venta unitario
	CurrentStock   decimal.Decimal // derivado: Σ IN − Σ OUT + Σ CORRECTION
	AvgConsumption decimal.Decimal // derivado: consumo promedio mensual
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
