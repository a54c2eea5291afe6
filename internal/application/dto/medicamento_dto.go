package dto

import "time"

// CreateMedicamentoRequest body para POST /api/medicamentos.
type CreateMedicamentoRequest struct {
	Nombre      string `json:"nombre"`
	StockMinimo int    `json:"stock_minimo"`
}

// UpdateMedicamentoRequest body para PUT /api/medicamentos/{id}.
// StockMinimo nil conserva el valor actual.
type UpdateMedicamentoRequest struct {
	Nombre      string `json:"nombre"`
	StockMinimo *int   `json:"stock_minimo"`
}

// MedicamentoResponse representación de un medicamento en respuestas.
type MedicamentoResponse struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	StockMinimo   int       `json:"stock_minimo"`
	Orden         int       `json:"orden"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}
