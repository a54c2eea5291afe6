package firestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tu-usuario/medicamentos-api/internal/domain"
	"github.com/tu-usuario/medicamentos-api/internal/domain/entity"
	"github.com/tu-usuario/medicamentos-api/internal/domain/inventory"
	"github.com/tu-usuario/medicamentos-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// movimientoDoc forma persistida del movimiento.
type movimientoDoc struct {
	MedicamentoID    string    `firestore:"medicamento_id"`
	Tipo             string    `firestore:"tipo"`
	Fecha            string    `firestore:"fecha"`
	Cantidad         int       `firestore:"cantidad"`
	Turno            string    `firestore:"turno"`
	FechaVencimiento string    `firestore:"fecha_vencimiento"`
	Observaciones    string    `firestore:"observaciones"`
	FechaRegistro    time.Time `firestore:"fecha_registro"`
}

func (d *movimientoDoc) aEntidad(id string) *entity.Movimiento {
	return &entity.Movimiento{
		ID:               id,
		MedicamentoID:    d.MedicamentoID,
		Tipo:             d.Tipo,
		Fecha:            d.Fecha,
		Cantidad:         d.Cantidad,
		Turno:            d.Turno,
		FechaVencimiento: d.FechaVencimiento,
		Observaciones:    d.Observaciones,
		FechaRegistro:    d.FechaRegistro,
	}
}

func aMovimientoDoc(mov *entity.Movimiento) *movimientoDoc {
	return &movimientoDoc{
		MedicamentoID:    mov.MedicamentoID,
		Tipo:             mov.Tipo,
		Fecha:            mov.Fecha,
		Cantidad:         mov.Cantidad,
		Turno:            mov.Turno,
		FechaVencimiento: mov.FechaVencimiento,
		Observaciones:    mov.Observaciones,
		FechaRegistro:    mov.FechaRegistro,
	}
}

// MovimientoRepo adaptador de persistencia para Movimiento sobre Firestore.
type MovimientoRepo struct {
	client *firestore.Client
}

// NewMovimientoRepository construye el adaptador (requiere Store disponible).
func NewMovimientoRepository(s *Store) *MovimientoRepo {
	return &MovimientoRepo{client: s.Client}
}

func (r *MovimientoRepo) col() *firestore.CollectionRef {
	return r.client.Collection(colMovimientos)
}

// Create inserta un movimiento sin verificación de stock.
func (r *MovimientoRepo) Create(ctx context.Context, mov *entity.Movimiento) error {
	if _, err := r.col().Doc(mov.ID).Create(ctx, aMovimientoDoc(mov)); err != nil {
		return fmt.Errorf("crear movimiento: %w", err)
	}
	return nil
}

// CreateSalida inserta una SALIDA dentro de una transacción de Firestore:
// relee todos los movimientos del medicamento, deriva el stock y solo inserta
// si alcanza. La transacción serializa salidas concurrentes del mismo
// medicamento, cerrando la carrera check-then-act del diseño original.
func (r *MovimientoRepo) CreateSalida(ctx context.Context, mov *entity.Movimiento) (int, error) {
	stockActual := 0
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		it := tx.Documents(r.col().Where("medicamento_id", "==", mov.MedicamentoID))
		defer it.Stop()

		var movs []*entity.Movimiento
		for {
			snap, err := it.Next()
			if errors.Is(err, iterator.Done) {
				break
			}
			if err != nil {
				return fmt.Errorf("leer movimientos en transacción: %w", err)
			}
			var doc movimientoDoc
			if err := snap.DataTo(&doc); err != nil {
				return fmt.Errorf("decodificar movimiento: %w", err)
			}
			movs = append(movs, doc.aEntidad(snap.Ref.ID))
		}

		stockActual = inventory.StockActual(movs)
		if stockActual < mov.Cantidad {
			return domain.ErrStockInsuficiente
		}
		return tx.Create(r.col().Doc(mov.ID), aMovimientoDoc(mov))
	})
	return stockActual, err
}

// GetByID devuelve (nil, nil) si el documento no existe.
func (r *MovimientoRepo) GetByID(ctx context.Context, id string) (*entity.Movimiento, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener movimiento: %w", err)
	}
	var doc movimientoDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decodificar movimiento: %w", err)
	}
	return doc.aEntidad(snap.Ref.ID), nil
}

// Update reescribe el documento completo.
func (r *MovimientoRepo) Update(ctx context.Context, mov *entity.Movimiento) error {
	if _, err := r.col().Doc(mov.ID).Set(ctx, aMovimientoDoc(mov)); err != nil {
		return fmt.Errorf("actualizar movimiento: %w", err)
	}
	return nil
}

// Delete elimina el documento.
func (r *MovimientoRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("eliminar movimiento: %w", err)
	}
	return nil
}

// ListRecientes devuelve hasta limit movimientos por fecha de registro descendente.
func (r *MovimientoRepo) ListRecientes(ctx context.Context, limit int) ([]*entity.Movimiento, error) {
	return r.listar(ctx, r.col().OrderBy("fecha_registro", firestore.Desc).Limit(limit).Documents(ctx))
}

// ListByMedicamento devuelve todos los movimientos de un medicamento.
func (r *MovimientoRepo) ListByMedicamento(ctx context.Context, medicamentoID string) ([]*entity.Movimiento, error) {
	return r.listar(ctx, r.col().Where("medicamento_id", "==", medicamentoID).Documents(ctx))
}

// ListByTipo devuelve todos los movimientos del tipo dado.
func (r *MovimientoRepo) ListByTipo(ctx context.Context, tipo string) ([]*entity.Movimiento, error) {
	return r.listar(ctx, r.col().Where("tipo", "==", tipo).Documents(ctx))
}

// CountByMedicamento cuenta los movimientos que referencian al medicamento.
func (r *MovimientoRepo) CountByMedicamento(ctx context.Context, medicamentoID string) (int, error) {
	return r.contar(ctx, r.col().Where("medicamento_id", "==", medicamentoID).Select().Documents(ctx))
}

// CountByFecha cuenta los movimientos con fecha calendario exacta.
func (r *MovimientoRepo) CountByFecha(ctx context.Context, fecha string) (int, error) {
	return r.contar(ctx, r.col().Where("fecha", "==", fecha).Select().Documents(ctx))
}

func (r *MovimientoRepo) listar(_ context.Context, it *firestore.DocumentIterator) ([]*entity.Movimiento, error) {
	defer it.Stop()

	var movs []*entity.Movimiento
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listar movimientos: %w", err)
		}
		var doc movimientoDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decodificar movimiento: %w", err)
		}
		movs = append(movs, doc.aEntidad(snap.Ref.ID))
	}
	return movs, nil
}

func (r *MovimientoRepo) contar(_ context.Context, it *firestore.DocumentIterator) (int, error) {
	defer it.Stop()

	n := 0
	for {
		_, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("contar movimientos: %w", err)
		}
		n++
	}
	return n, nil
}
