// Package ledger implementa el agregador del libro de inventario (servicio de dominio):
// a partir de los asientos de un producto calcula el stock actual y el consumo
// promedio mensual. Funciones puras, sin efectos; el caller persiste los resultados
// sobre el producto dentro de la misma transacción que mutó el libro.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CurrentStock calcula el stock actual de un producto:
//
//	Σ entradas − Σ consumos + Σ correcciones
//
// redondeado a 2 decimales. El orden de los asientos no afecta el resultado;
// un libro vacío da 0.
func CurrentStock(postings []Posting) decimal.Decimal {
	total := decimal.Zero
	for _, p := range postings {
		switch p.Kind {
		case KindReceipt:
			total = total.Add(p.Quantity)
		case KindConsumption:
			total = total.Sub(p.Quantity)
		case KindCorrection:
			total = total.Add(p.Quantity)
		default:
			// Los constructores y ParseKind impiden llegar aquí; si pasa es un
			// bug del caller y preferimos fallar a sumar mal.
			panic(fmt.Sprintf("ledger: tipo de movimiento desconocido: %q", p.Kind))
		}
	}
	return total.Round(2)
}

// AverageConsumption calcula el consumo promedio mensual de un producto:
// consumo total por mes calendario con actividad, contado desde el primer mes
// con consumo real. Solo participan consumos con CountsTowardRate; las
// correcciones quedan excluidas por construcción.
//
// Algoritmo:
//  1. Filtrar consumos marcados para el promedio; si no hay, retorna 0.
//  2. "Primer uso" = fecha del asiento filtrado más antiguo con cantidad > 0;
//     si todos son cero, retorna 0. Los asientos anteriores a esa fecha se
//     descartan: los meses muertos antes del primer consumo no diluyen la tasa.
//  3. Sumar las cantidades restantes y dividir por la cantidad de meses
//     calendario (año+mes) distintos presentes; redondear a 2 decimales.
//
// Varios consumos del mismo mes se acumulan en el bucket de ese mes: el
// promedio es "consumo total por mes activo", no "tamaño promedio de asiento".
func AverageConsumption(postings []Posting) decimal.Decimal {
	var rated []Posting
	for _, p := range postings {
		if p.Kind == KindConsumption && p.CountsTowardRate {
			rated = append(rated, p)
		}
	}
	if len(rated) == 0 {
		return decimal.Zero
	}

	firstUsage, ok := firstUsageDate(rated)
	if !ok {
		return decimal.Zero
	}

	total := decimal.Zero
	months := make(map[string]struct{})
	for _, p := range rated {
		if p.Date.Before(firstUsage) {
			continue
		}
		total = total.Add(p.Quantity)
		months[p.Date.Format("2006-01")] = struct{}{}
	}
	return total.Div(decimal.NewFromInt(int64(len(months)))).Round(2)
}

// firstUsageDate devuelve la fecha del asiento más antiguo con cantidad > 0.
// ok=false si todas las cantidades son cero.
func firstUsageDate(postings []Posting) (time.Time, bool) {
	var first time.Time
	found := false
	for _, p := range postings {
		if !p.Quantity.GreaterThan(decimal.Zero) {
			continue
		}
		if !found || p.Date.Before(first) {
			first = p.Date
			found = true
		}
	}
	return first, found
}
