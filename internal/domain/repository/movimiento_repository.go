package repository

import (
	"context"

	"github.com/tu-usuario/medicamentos-api/internal/domain/entity"
)

// MovimientoRepository define el puerto de persistencia para Movimiento.
type MovimientoRepository interface {
	// Create inserta un movimiento sin verificación de stock (ingresos).
	Create(ctx context.Context, mov *entity.Movimiento) error
	// CreateSalida inserta una SALIDA verificando el stock derivado dentro de la
	// misma transacción del almacén: si la cantidad supera el stock actual
	// devuelve domain.ErrStockInsuficiente y no inserta nada. La verificación y
	// la inserción son atómicas; dos salidas concurrentes no pueden dejar el
	// stock negativo.
	CreateSalida(ctx context.Context, mov *entity.Movimiento) (stockActual int, err error)
	GetByID(ctx context.Context, id string) (*entity.Movimiento, error)
	Update(ctx context.Context, mov *entity.Movimiento) error
	Delete(ctx context.Context, id string) error
	// ListRecientes devuelve hasta limit movimientos ordenados por fecha de
	// registro descendente.
	ListRecientes(ctx context.Context, limit int) ([]*entity.Movimiento, error)
	// ListByMedicamento devuelve todos los movimientos de un medicamento, en
	// cualquier orden (el fold de stock no depende del orden).
	ListByMedicamento(ctx context.Context, medicamentoID string) ([]*entity.Movimiento, error)
	// ListByTipo devuelve todos los movimientos del tipo dado.
	ListByTipo(ctx context.Context, tipo string) ([]*entity.Movimiento, error)
	CountByMedicamento(ctx context.Context, medicamentoID string) (int, error)
	// CountByFecha cuenta movimientos con fecha calendario exacta "2006-01-02".
	CountByFecha(ctx context.Context, fecha string) (int, error)
}
