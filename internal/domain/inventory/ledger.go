// Package inventory contiene la lógica pura del libro de stock: el fold de
// movimientos que deriva el stock actual, la clasificación por bandas y las
// agregaciones de demanda y reporte. Ninguna función de este paquete toca
// almacenamiento ni tiene efectos secundarios.
package inventory

import "github.com/tu-usuario/medicamentos-api/internal/domain/entity"

// Estado de stock de un medicamento según su banda.
type Estado string

const (
	EstadoAgotado Estado = "AGOTADO" // stock <= 0
	EstadoCritico Estado = "CRITICO" // stock <= mínimo
	EstadoBajo    Estado = "BAJO"    // stock <= 1.5 * mínimo
	EstadoOK      Estado = "OK"
)

// StockActual deriva el stock como suma con signo de los movimientos:
// Σ cantidad(INGRESO) − Σ cantidad(SALIDA). El resultado no depende del orden
// de la secuencia. Tipos desconocidos se ignoran.
func StockActual(movs []*entity.Movimiento) int {
	stock := 0
	for _, m := range movs {
		switch m.Tipo {
		case entity.MovimientoIngreso:
			stock += m.Cantidad
		case entity.MovimientoSalida:
			stock -= m.Cantidad
		}
	}
	return stock
}

// ClasificarEstado aplica la política de cuatro bandas. Los límites son
// inclusivos por abajo: stock == mínimo es CRITICO, no BAJO. La comparación
// con 1.5·mínimo se hace en enteros (2·stock <= 3·mínimo) para no depender
// de redondeo flotante en el límite.
func ClasificarEstado(stock, minimo int) Estado {
	switch {
	case stock <= 0:
		return EstadoAgotado
	case stock <= minimo:
		return EstadoCritico
	case 2*stock <= 3*minimo:
		return EstadoBajo
	default:
		return EstadoOK
	}
}

// UltimoIngreso devuelve el ingreso con fecha más reciente, o nil si no hay.
// Las fechas "2006-01-02" se comparan lexicográficamente.
func UltimoIngreso(movs []*entity.Movimiento) *entity.Movimiento {
	var ultimo *entity.Movimiento
	for _, m := range movs {
		if m.Tipo != entity.MovimientoIngreso {
			continue
		}
		if ultimo == nil || m.Fecha > ultimo.Fecha {
			ultimo = m
		}
	}
	return ultimo
}

// SalidasEnRango suma las cantidades de SALIDA con fecha dentro de [desde, hasta]
// (ambos inclusive, formato "2006-01-02").
func SalidasEnRango(movs []*entity.Movimiento, desde, hasta string) int {
	total := 0
	for _, m := range movs {
		if m.Tipo == entity.MovimientoSalida && m.Fecha >= desde && m.Fecha <= hasta {
			total += m.Cantidad
		}
	}
	return total
}
