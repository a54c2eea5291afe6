package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/medicamentos-api/internal/domain/entity"
	infrafs "github.com/tu-usuario/medicamentos-api/internal/infrastructure/firestore"
	"github.com/tu-usuario/medicamentos-api/pkg/config"
	"github.com/tu-usuario/medicamentos-api/pkg/logger"
)

// catalogoInicial es la dotación estándar del carro de urgencias, en el orden
// físico de las gavetas.
var catalogoInicial = []string{
	"Acido valproico", "Amiodarona", "Atracurio", "Atropina",
	"Bicarbonato", "Clorfeniramida", "Cloruro de potasio", "Cloruro de sodio",
	"Dexametazona", "Diclofenaco", "Dicynone", "Diazepam", "Dimenhidrato",
	"Dipirona", "Dobutamina", "Efedrina", "Fentanil", "Flumazenil", "Fenitoina",
	"Fenobarbital", "Furosemida", "Gronisetron", "Gluconato de calcio",
	"Hidrocortizona", "Lidocaina", "Metilpredisona", "Metoclopramida",
	"Midazolan", "Morfina", "Norestimina", "Rosiverina", "Sulfato de magnecio",
}

func main() {
	conMovimientos := flag.Bool("movimientos", false, "crear también ingresos de prueba")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	store, err := infrafs.NewStore(ctx, cfg.Firebase)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Firebase")
	}
	defer store.Close()

	if !store.Disponible() {
		log.Fatal().Msg("FIREBASE_CONFIG es requerido para sembrar datos")
	}

	medRepo := infrafs.NewMedicamentoRepository(store)
	movRepo := infrafs.NewMovimientoRepository(store)

	existentes, err := medRepo.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("contar medicamentos")
	}
	if existentes > 0 {
		log.Info().Int("medicamentos", existentes).Msg("el catálogo ya existe, nada que sembrar")
		return
	}

	ids := make([]string, 0, len(catalogoInicial))
	for idx, nombre := range catalogoInicial {
		med := &entity.Medicamento{
			ID:            uuid.NewString(),
			Nombre:        nombre,
			StockMinimo:   entity.StockMinimoPorDefecto,
			Orden:         idx,
			FechaCreacion: time.Now(),
		}
		if err := medRepo.Create(ctx, med); err != nil {
			log.Fatal().Err(err).Str("nombre", nombre).Msg("crear medicamento")
		}
		ids = append(ids, med.ID)
	}
	log.Info().Int("medicamentos", len(ids)).Msg("catálogo inicial creado")

	if !*conMovimientos {
		return
	}

	hoy := time.Now().Format(entity.FormatoFecha)
	for i := 0; i < 5 && i < len(ids); i++ {
		mov := &entity.Movimiento{
			ID:            uuid.NewString(),
			MedicamentoID: ids[i],
			Tipo:          entity.MovimientoIngreso,
			Fecha:         hoy,
			Cantidad:      50 + i*10,
			Turno:         entity.TurnoManana,
			Observaciones: fmt.Sprintf("Ingreso inicial %d", i+1),
			FechaRegistro: time.Now(),
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			log.Fatal().Err(err).Msg("crear movimiento de prueba")
		}
	}
	log.Info().Msg("movimientos de prueba creados")
}
