package repository

import (
	"context"

	"github.com/tu-usuario/medicamentos-api/internal/domain/entity"
)

// MedicamentoRepository define el puerto de persistencia para Medicamento (DIP).
// Los Get devuelven (nil, nil) cuando el documento no existe.
type MedicamentoRepository interface {
	Create(ctx context.Context, med *entity.Medicamento) error
	GetByID(ctx context.Context, id string) (*entity.Medicamento, error)
	// GetByNombre busca por nombre normalizado (entity.NormalizarNombre).
	GetByNombre(ctx context.Context, nombreNormalizado string) (*entity.Medicamento, error)
	// List devuelve el catálogo completo ordenado por el campo orden.
	List(ctx context.Context) ([]*entity.Medicamento, error)
	Update(ctx context.Context, med *entity.Medicamento) error
	Delete(ctx context.Context, id string) error
	// MaxOrden devuelve el mayor orden asignado (0 si el catálogo está vacío).
	MaxOrden(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
}
