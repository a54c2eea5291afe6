package report

import "github.com/tu-usuario/medicamentos-api/internal/domain/inventory"

// CuadriculaRenderer convierte la cuadrícula del reporte en un documento
// descargable (xlsx o PDF). Presentación pura: no toca almacenamiento.
type CuadriculaRenderer interface {
	Render(c *inventory.Cuadricula) ([]byte, error)
}
