package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/medicamentos-api/internal/domain/entity"
	"github.com/tu-usuario/medicamentos-api/internal/domain/inventory"
)

func mov(tipo, fecha string, cantidad int) *entity.Movimiento {
	return &entity.Movimiento{Tipo: tipo, Fecha: fecha, Cantidad: cantidad}
}

// ──────────────────────────────────────────────────────────────────────────────
// StockActual — el stock es el fold con signo del libro de movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestStockActual_SinMovimientosEsCero(t *testing.T) {
	assert.Equal(t, 0, inventory.StockActual(nil))
	assert.Equal(t, 0, inventory.StockActual([]*entity.Movimiento{}))
}

func TestStockActual_SumaIngresosYRestaSalidas(t *testing.T) {
	movs := []*entity.Movimiento{
		mov(entity.MovimientoIngreso, "2025-01-01", 50),
		mov(entity.MovimientoSalida, "2025-01-02", 12),
		mov(entity.MovimientoIngreso, "2025-01-03", 20),
		mov(entity.MovimientoSalida, "2025-01-04", 8),
	}
	assert.Equal(t, 50, inventory.StockActual(movs), "50 - 12 + 20 - 8 = 50")
}

// El resultado no depende del orden en que lleguen los movimientos: Firestore
// no garantiza orden de inserción y el fold debe dar lo mismo.
func TestStockActual_IndependienteDelOrden(t *testing.T) {
	original := []*entity.Movimiento{
		mov(entity.MovimientoIngreso, "2025-01-01", 30),
		mov(entity.MovimientoSalida, "2025-01-05", 7),
		mov(entity.MovimientoIngreso, "2025-01-03", 15),
		mov(entity.MovimientoSalida, "2025-01-02", 3),
	}
	invertido := []*entity.Movimiento{original[3], original[2], original[1], original[0]}

	assert.Equal(t, inventory.StockActual(original), inventory.StockActual(invertido))
	assert.Equal(t, 35, inventory.StockActual(original))
}

func TestStockActual_IgnoraTiposDesconocidos(t *testing.T) {
	movs := []*entity.Movimiento{
		mov(entity.MovimientoIngreso, "2025-01-01", 10),
		mov("AJUSTE", "2025-01-02", 100),
	}
	assert.Equal(t, 10, inventory.StockActual(movs))
}

func TestStockActual_PuedeSerNegativoConHistoricoCorrupto(t *testing.T) {
	// El fold no inventa un piso: si el histórico quedó inconsistente
	// (ediciones manuales), el stock derivado refleja eso.
	movs := []*entity.Movimiento{
		mov(entity.MovimientoSalida, "2025-01-01", 5),
	}
	assert.Equal(t, -5, inventory.StockActual(movs))
}

// ──────────────────────────────────────────────────────────────────────────────
// ClasificarEstado — bandas con límites inclusivos por abajo
// ──────────────────────────────────────────────────────────────────────────────

func TestClasificarEstado_Bandas(t *testing.T) {
	casos := []struct {
		nombre   string
		stock    int
		minimo   int
		esperado inventory.Estado
	}{
		{"stock cero es AGOTADO", 0, 10, inventory.EstadoAgotado},
		{"stock negativo es AGOTADO", -3, 10, inventory.EstadoAgotado},
		{"stock 1 con mínimo 10 es CRITICO", 1, 10, inventory.EstadoCritico},
		{"stock igual al mínimo es CRITICO, no BAJO", 10, 10, inventory.EstadoCritico},
		{"stock apenas sobre el mínimo es BAJO", 11, 10, inventory.EstadoBajo},
		{"stock en 1.5x el mínimo sigue siendo BAJO", 15, 10, inventory.EstadoBajo},
		{"stock sobre 1.5x el mínimo es OK", 16, 10, inventory.EstadoOK},
		{"mínimo impar: 1.5*7=10.5, stock 10 es BAJO", 10, 7, inventory.EstadoBajo},
		{"mínimo impar: stock 11 supera 10.5 y es OK", 11, 7, inventory.EstadoOK},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, inventory.ClasificarEstado(c.stock, c.minimo))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// UltimoIngreso y SalidasEnRango
// ──────────────────────────────────────────────────────────────────────────────

func TestUltimoIngreso_DevuelveElMasReciente(t *testing.T) {
	primero := mov(entity.MovimientoIngreso, "2025-01-01", 10)
	ultimo := mov(entity.MovimientoIngreso, "2025-03-15", 20)
	movs := []*entity.Movimiento{
		primero,
		mov(entity.MovimientoSalida, "2025-04-01", 5), // salidas no cuentan
		ultimo,
		mov(entity.MovimientoIngreso, "2025-02-10", 30),
	}
	assert.Same(t, ultimo, inventory.UltimoIngreso(movs))
}

func TestUltimoIngreso_NilSinIngresos(t *testing.T) {
	movs := []*entity.Movimiento{mov(entity.MovimientoSalida, "2025-01-01", 5)}
	assert.Nil(t, inventory.UltimoIngreso(movs))
	assert.Nil(t, inventory.UltimoIngreso(nil))
}

func TestSalidasEnRango_LimitesInclusivos(t *testing.T) {
	movs := []*entity.Movimiento{
		mov(entity.MovimientoSalida, "2025-01-31", 1), // un día antes
		mov(entity.MovimientoSalida, "2025-02-01", 2), // primer día
		mov(entity.MovimientoSalida, "2025-02-15", 4),
		mov(entity.MovimientoSalida, "2025-02-28", 8), // último día
		mov(entity.MovimientoSalida, "2025-03-01", 16), // un día después
		mov(entity.MovimientoIngreso, "2025-02-10", 100), // ingresos no cuentan
	}
	assert.Equal(t, 14, inventory.SalidasEnRango(movs, "2025-02-01", "2025-02-28"))
}
