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
	"github.com/tu-usuario/medicamentos-api/internal/domain/repository"
)

var _ repository.MedicamentoRepository = (*MedicamentoRepo)(nil)

// medicamentoDoc forma persistida del medicamento. Guarda además el nombre
// normalizado para poder consultar duplicados con un Where de igualdad.
type medicamentoDoc struct {
	Nombre            string    `firestore:"nombre"`
	NombreNormalizado string    `firestore:"nombre_normalizado"`
	StockMinimo       int       `firestore:"stock_minimo"`
	Orden             int       `firestore:"orden"`
	FechaCreacion     time.Time `firestore:"fecha_creacion"`
}

func (d *medicamentoDoc) aEntidad(id string) *entity.Medicamento {
	return &entity.Medicamento{
		ID:            id,
		Nombre:        d.Nombre,
		StockMinimo:   d.StockMinimo,
		Orden:         d.Orden,
		FechaCreacion: d.FechaCreacion,
	}
}

func aMedicamentoDoc(med *entity.Medicamento) *medicamentoDoc {
	return &medicamentoDoc{
		Nombre:            med.Nombre,
		NombreNormalizado: entity.NormalizarNombre(med.Nombre),
		StockMinimo:       med.StockMinimo,
		Orden:             med.Orden,
		FechaCreacion:     med.FechaCreacion,
	}
}

// MedicamentoRepo adaptador de persistencia para Medicamento sobre Firestore.
type MedicamentoRepo struct {
	client *firestore.Client
}

// NewMedicamentoRepository construye el adaptador (requiere Store disponible).
func NewMedicamentoRepository(s *Store) *MedicamentoRepo {
	return &MedicamentoRepo{client: s.Client}
}

func (r *MedicamentoRepo) col() *firestore.CollectionRef {
	return r.client.Collection(colMedicamentos)
}

// Create persiste un medicamento nuevo con su ID como ID de documento.
func (r *MedicamentoRepo) Create(ctx context.Context, med *entity.Medicamento) error {
	if _, err := r.col().Doc(med.ID).Create(ctx, aMedicamentoDoc(med)); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("crear medicamento: %w", err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si el documento no existe.
func (r *MedicamentoRepo) GetByID(ctx context.Context, id string) (*entity.Medicamento, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("obtener medicamento: %w", err)
	}
	var doc medicamentoDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decodificar medicamento: %w", err)
	}
	return doc.aEntidad(snap.Ref.ID), nil
}

// GetByNombre busca por nombre normalizado exacto.
func (r *MedicamentoRepo) GetByNombre(ctx context.Context, nombreNormalizado string) (*entity.Medicamento, error) {
	it := r.col().Where("nombre_normalizado", "==", nombreNormalizado).Limit(1).Documents(ctx)
	defer it.Stop()

	snap, err := it.Next()
	if errors.Is(err, iterator.Done) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("buscar medicamento por nombre: %w", err)
	}
	var doc medicamentoDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("decodificar medicamento: %w", err)
	}
	return doc.aEntidad(snap.Ref.ID), nil
}

// List devuelve el catálogo completo ordenado por orden.
func (r *MedicamentoRepo) List(ctx context.Context) ([]*entity.Medicamento, error) {
	it := r.col().OrderBy("orden", firestore.Asc).Documents(ctx)
	defer it.Stop()

	var meds []*entity.Medicamento
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listar medicamentos: %w", err)
		}
		var doc medicamentoDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decodificar medicamento: %w", err)
		}
		meds = append(meds, doc.aEntidad(snap.Ref.ID))
	}
	return meds, nil
}

// Update reescribe el documento completo.
func (r *MedicamentoRepo) Update(ctx context.Context, med *entity.Medicamento) error {
	if _, err := r.col().Doc(med.ID).Set(ctx, aMedicamentoDoc(med)); err != nil {
		return fmt.Errorf("actualizar medicamento: %w", err)
	}
	return nil
}

// Delete elimina el documento. Borrar un ID inexistente no es error en
// Firestore; la capa de aplicación verifica existencia antes.
func (r *MedicamentoRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("eliminar medicamento: %w", err)
	}
	return nil
}

// MaxOrden devuelve el mayor orden asignado, 0 con catálogo vacío.
func (r *MedicamentoRepo) MaxOrden(ctx context.Context) (int, error) {
	it := r.col().OrderBy("orden", firestore.Desc).Limit(1).Documents(ctx)
	defer it.Stop()

	snap, err := it.Next()
	if errors.Is(err, iterator.Done) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("max orden: %w", err)
	}
	var doc medicamentoDoc
	if err := snap.DataTo(&doc); err != nil {
		return 0, fmt.Errorf("decodificar medicamento: %w", err)
	}
	return doc.Orden, nil
}

// Count cuenta los documentos del catálogo.
func (r *MedicamentoRepo) Count(ctx context.Context) (int, error) {
	it := r.col().Select().Documents(ctx)
	defer it.Stop()

	n := 0
	for {
		_, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("contar medicamentos: %w", err)
		}
		n++
	}
	return n, nil
}
