package dto

import "time"

// CreateMovimientoRequest body para POST /api/movimientos.
type CreateMovimientoRequest struct {
	MedicamentoID    string `json:"medicamento_id"`
	Tipo             string `json:"tipo"`  // INGRESO o SALIDA
	Fecha            string `json:"fecha"` // "2006-01-02"
	Cantidad         int    `json:"cantidad"`
	Turno            string `json:"turno,omitempty"`
	FechaVencimiento string `json:"fecha_vencimiento,omitempty"`
	Observaciones    string `json:"observaciones,omitempty"`
}

// UpdateMovimientoRequest body para PUT /api/movimientos/{id}.
// Solo cantidad, fecha y turno son editables, como en el registro original.
type UpdateMovimientoRequest struct {
	Cantidad int    `json:"cantidad"`
	Fecha    string `json:"fecha"`
	Turno    string `json:"turno,omitempty"`
}

// MovimientoResponse representación de un movimiento en respuestas; incluye el
// nombre del medicamento resuelto para los listados.
type MovimientoResponse struct {
	ID                string    `json:"id"`
	MedicamentoID     string    `json:"medicamento_id"`
	MedicamentoNombre string    `json:"medicamento_nombre,omitempty"`
	Tipo              string    `json:"tipo"`
	Fecha             string    `json:"fecha"`
	Cantidad          int       `json:"cantidad"`
	Turno             string    `json:"turno,omitempty"`
	FechaVencimiento  string    `json:"fecha_vencimiento,omitempty"`
	Observaciones     string    `json:"observaciones,omitempty"`
	FechaRegistro     time.Time `json:"fecha_registro"`
}

// StockInsuficienteResponse detalle del conflicto al rechazar una SALIDA.
type StockInsuficienteResponse struct {
	Code               string `json:"code"`
	Message            string `json:"message"`
	StockActual        int    `json:"stock_actual"`
	CantidadSolicitada int    `json:"cantidad_solicitada"`
}
