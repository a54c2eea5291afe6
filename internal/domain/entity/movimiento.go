package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovimientoIngreso = "INGRESO" // reposición de stock
	MovimientoSalida  = "SALIDA"  // dispensación
)

// Turnos de trabajo para clasificar salidas en los reportes.
const (
	TurnoManana = "M"
	TurnoTarde  = "T"
	TurnoNoche  = "N"
)

// FormatoFecha layout de las fechas calendario de movimientos (sin hora).
const FormatoFecha = "2006-01-02"

// Movimiento representa un cambio de stock registrado (ingreso o salida).
// En la práctica es append-only; update/delete existen pero no conservan auditoría.
type Movimiento struct {
	ID               string
	MedicamentoID    string
	Tipo             string
	Fecha            string // fecha calendario "2006-01-02"
	Cantidad         int
	Turno            string // M, T, N o vacío
	FechaVencimiento string // solo ingresos
	Observaciones    string
	FechaRegistro    time.Time // timestamp de inserción
}

// TipoValido indica si el tipo de movimiento es uno de los soportados.
func TipoValido(tipo string) bool {
	return tipo == MovimientoIngreso || tipo == MovimientoSalida
}

// TurnoValido acepta los tres turnos o la ausencia de turno.
func TurnoValido(turno string) bool {
	switch turno {
	case "", TurnoManana, TurnoTarde, TurnoNoche:
		return true
	}
	return false
}

// ValidarFecha verifica el formato calendario "2006-01-02".
func ValidarFecha(fecha string) error {
	_, err := time.Parse(FormatoFecha, fecha)
	return err
}
