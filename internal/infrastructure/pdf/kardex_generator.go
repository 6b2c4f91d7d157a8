// Package pdf implementa la generación del kardex de un producto: encabezado con
// los datos del producto y sus derivados, y la tabla de movimientos del libro.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/davidrt/ventastock-api/internal/application/report"
	"github.com/davidrt/ventastock-api/internal/domain/entity"
	"github.com/davidrt/ventastock-api/internal/domain/ledger"
)

var _ report.KardexPDFGenerator = (*MarotoKardexGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoKardexGenerator implementa report.KardexPDFGenerator usando Maroto v2.
type MarotoKardexGenerator struct{}

// NewMarotoKardexGenerator construye el generador.
func NewMarotoKardexGenerator() *MarotoKardexGenerator { return &MarotoKardexGenerator{} }

// GenerateKardexPDF genera el PDF del kardex y devuelve sus bytes.
func (g *MarotoKardexGenerator) GenerateKardexPDF(
	_ context.Context,
	product *entity.Product,
	txns []*entity.StockTransaction,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex de producto", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, t := range txns {
		m.AddRows(movementRow(t))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar kardex: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del producto (izq) y SKU (der).
func headerRow(product *entity.Product) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Kardex de inventario", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("SKU: "+product.SKU, props.Text{
				Size: 10, Align: align.Right, Top: 2,
			}),
			text.New(product.UnitMeasure, props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRow: derivados materializados del libro.
func summaryRow(product *entity.Product) core.Row {
	return row.New(10).Add(
		col.New(6).Add(
			text.New("Stock actual: "+product.CurrentStock.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New("Consumo promedio mensual: "+product.AvgConsumption.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2, Align: align.Right,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	return row.New(8).Add(
		text.NewCol(3, "Fecha", header),
		text.NewCol(3, "Tipo", header),
		text.NewCol(3, "Cantidad", mergeAlign(header, align.Right)),
		text.NewCol(3, "En promedio", mergeAlign(header, align.Right)),
	)
}

func movementRow(t *entity.StockTransaction) core.Row {
	enPromedio := "-"
	if t.Type == string(ledger.KindConsumption) {
		if t.IncludeInAvg {
			enPromedio = "sí"
		} else {
			enPromedio = "no"
		}
	}
	cell := props.Text{Size: 9}
	return row.New(6).Add(
		text.NewCol(3, t.Date.Format("02/01/2006"), cell),
		text.NewCol(3, movementLabel(t.Type), cell),
		text.NewCol(3, t.Quantity.StringFixed(2), mergeAlign(cell, align.Right)),
		text.NewCol(3, enPromedio, mergeAlign(cell, align.Right)),
	)
}

func movementLabel(kind string) string {
	switch ledger.Kind(kind) {
	case ledger.KindReceipt:
		return "Entrada"
	case ledger.KindConsumption:
		return "Consumo"
	case ledger.KindCorrection:
		return "Corrección"
	}
	return kind
}

func mergeAlign(p props.Text, a align.Type) props.Text {
	p.Align = a
	return p
}
