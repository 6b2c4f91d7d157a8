package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrt/ventastock-api/internal/domain/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func fecha(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func entrada(t *testing.T, qty float64, date string) ledger.Posting {
	t.Helper()
	p, err := ledger.NewReceipt(decimal.NewFromFloat(qty), fecha(t, date))
	require.NoError(t, err)
	return p
}

func consumo(t *testing.T, qty float64, date string, enPromedio bool) ledger.Posting {
	t.Helper()
	p, err := ledger.NewConsumption(decimal.NewFromFloat(qty), fecha(t, date), enPromedio)
	require.NoError(t, err)
	return p
}

func ajuste(t *testing.T, qty float64, date string) ledger.Posting {
	t.Helper()
	return ledger.NewCorrection(decimal.NewFromFloat(qty), fecha(t, date))
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)),
		"%s: esperado %s, obtenido %s", msg, want, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// CurrentStock
// ──────────────────────────────────────────────────────────────────────────────

// El stock es la suma lineal Σ IN − Σ OUT + Σ CORRECTION, sin importar el orden.
func TestCurrentStock_SumaLinealInvarianteAlOrden(t *testing.T) {
	postings := []ledger.Posting{
		entrada(t, 500, "2024-01-09"),
		consumo(t, 50, "2024-03-01", true),
		ajuste(t, -10, "2024-05-01"),
		consumo(t, 70, "2024-04-01", false),
		entrada(t, 25.5, "2024-06-15"),
	}
	want := ledger.CurrentStock(postings)
	assertDecimal(t, "395.5", want, "stock con todos los asientos")

	// Permutación inversa: mismo resultado
	reversed := make([]ledger.Posting, 0, len(postings))
	for i := len(postings) - 1; i >= 0; i-- {
		reversed = append(reversed, postings[i])
	}
	assert.True(t, ledger.CurrentStock(reversed).Equal(want),
		"el stock debe ser invariante a permutaciones del libro")
}

func TestCurrentStock_LibroVacioRetornaCero(t *testing.T) {
	assertDecimal(t, "0", ledger.CurrentStock(nil), "libro vacío")
}

// Las correcciones suman con su signo (positivas y negativas).
func TestCurrentStock_CorreccionesConSigno(t *testing.T) {
	postings := []ledger.Posting{
		entrada(t, 100, "2024-01-01"),
		ajuste(t, -30, "2024-02-01"),
		ajuste(t, 5, "2024-03-01"),
	}
	assertDecimal(t, "75", ledger.CurrentStock(postings), "100 − 30 + 5")
}

func TestCurrentStock_RedondeaADosDecimales(t *testing.T) {
	p1, err := ledger.NewReceipt(decimal.RequireFromString("10.005"), fecha(t, "2024-01-01"))
	require.NoError(t, err)
	got := ledger.CurrentStock([]ledger.Posting{p1})
	assert.Equal(t, int32(-2), got.Exponent(), "el resultado debe tener 2 decimales")
	assertDecimal(t, "10.01", got, "redondeo a 2 decimales")
}

// ──────────────────────────────────────────────────────────────────────────────
// AverageConsumption
// ──────────────────────────────────────────────────────────────────────────────

func TestAverageConsumption_LibroVacioRetornaCero(t *testing.T) {
	assertDecimal(t, "0", ledger.AverageConsumption(nil), "libro vacío")
}

// Las correcciones nunca afectan el promedio, sin importar signo ni magnitud.
func TestAverageConsumption_IgnoraCorrecciones(t *testing.T) {
	base := []ledger.Posting{
		consumo(t, 100, "2024-03-05", true),
	}
	conCorrecciones := append([]ledger.Posting{
		ajuste(t, -9999, "2024-01-01"),
		ajuste(t, 5000, "2024-02-01"),
	}, base...)

	assert.True(t, ledger.AverageConsumption(base).Equal(ledger.AverageConsumption(conCorrecciones)),
		"las correcciones no deben cambiar el consumo promedio")
}

// Un consumo con CountsTowardRate=false no participa en el promedio.
func TestAverageConsumption_RespetaFlagDePromedio(t *testing.T) {
	base := []ledger.Posting{
		consumo(t, 100, "2024-03-05", true),
		consumo(t, 200, "2024-04-05", true),
	}
	conExcluido := append([]ledger.Posting{
		consumo(t, 10000, "2024-02-01", false),
	}, base...)

	want := ledger.AverageConsumption(base)
	assertDecimal(t, "150", want, "(100+200)/2")
	assert.True(t, ledger.AverageConsumption(conExcluido).Equal(want),
		"un consumo excluido del promedio no debe alterar el resultado")
}

// Los meses muertos antes del primer consumo real no diluyen el promedio.
func TestAverageConsumption_RecortaHastaPrimerUso(t *testing.T) {
	postings := []ledger.Posting{
		consumo(t, 0, "2024-01-10", true),
		consumo(t, 0, "2024-02-10", true),
		consumo(t, 100, "2024-03-10", true),
	}
	assertDecimal(t, "100", ledger.AverageConsumption(postings),
		"solo cuenta desde marzo: 100/1")
}

// Si todos los consumos filtrados son cero no hay primer uso: promedio 0.
func TestAverageConsumption_TodoCeroRetornaCero(t *testing.T) {
	postings := []ledger.Posting{
		consumo(t, 0, "2024-01-10", true),
		consumo(t, 0, "2024-02-10", true),
	}
	assertDecimal(t, "0", ledger.AverageConsumption(postings), "sin primer uso")
}

// Dos consumos del mismo mes se acumulan en un solo bucket mensual.
func TestAverageConsumption_AcumulaPorMesCalendario(t *testing.T) {
	postings := []ledger.Posting{
		consumo(t, 40, "2024-03-05", true),
		consumo(t, 60, "2024-03-20", true),
	}
	assertDecimal(t, "100", ledger.AverageConsumption(postings),
		"40+60 en marzo, un solo mes")
}

func TestAverageConsumption_PromedioMultiMes(t *testing.T) {
	postings := []ledger.Posting{
		consumo(t, 100, "2024-03-15", true),
		consumo(t, 200, "2024-04-15", true),
	}
	assertDecimal(t, "150", ledger.AverageConsumption(postings), "(100+200)/2")
}

func TestAverageConsumption_RedondeaADosDecimales(t *testing.T) {
	postings := []ledger.Posting{
		consumo(t, 40, "2024-03-15", true),
		consumo(t, 30, "2024-04-15", true),
		consumo(t, 30, "2024-05-15", true),
	}
	assertDecimal(t, "33.33", ledger.AverageConsumption(postings), "100/3 redondeado")
}

// Escenario completo: entradas, consumos (con y sin flag), corrección.
func TestAggregator_EscenarioCompleto(t *testing.T) {
	postings := []ledger.Posting{
		entrada(t, 500, "2024-01-09"),
		consumo(t, 0, "2024-02-10", true),
		consumo(t, 50, "2024-03-10", true),
		consumo(t, 70, "2024-04-10", true),
		ajuste(t, -10, "2024-05-10"),
	}
	assertDecimal(t, "370", ledger.CurrentStock(postings), "500 − 0 − 50 − 70 − 10")
	assertDecimal(t, "60", ledger.AverageConsumption(postings), "(50+70)/2")
}

// ──────────────────────────────────────────────────────────────────────────────
// Constructores (frontera de validación)
// ──────────────────────────────────────────────────────────────────────────────

func TestConstructores_RechazanCantidadesNegativas(t *testing.T) {
	_, err := ledger.NewReceipt(decimal.NewFromInt(-1), fecha(t, "2024-01-01"))
	assert.Error(t, err, "entrada negativa debe rechazarse")

	_, err = ledger.NewConsumption(decimal.NewFromInt(-1), fecha(t, "2024-01-01"), true)
	assert.Error(t, err, "consumo negativo debe rechazarse")
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"IN", "OUT", "CORRECTION"} {
		k, err := ledger.ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, ledger.Kind(s), k)
	}
	_, err := ledger.ParseKind("TRANSFER")
	assert.Error(t, err, "tipo desconocido debe rechazarse")
}
