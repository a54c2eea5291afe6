package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/medicamentos-api/internal/application/report"
	"github.com/tu-usuario/medicamentos-api/internal/application/usecase"
	infraexcel "github.com/tu-usuario/medicamentos-api/internal/infrastructure/excel"
	"github.com/tu-usuario/medicamentos-api/internal/infrastructure/firebaseauth"
	infrafs "github.com/tu-usuario/medicamentos-api/internal/infrastructure/firestore"
	infrapdf "github.com/tu-usuario/medicamentos-api/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/medicamentos-api/internal/interfaces/http"
	"github.com/tu-usuario/medicamentos-api/pkg/config"
	"github.com/tu-usuario/medicamentos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := infrafs.NewStore(ctx, cfg.Firebase)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Firebase")
	}
	defer store.Close()

	if !store.Disponible() {
		log.Warn().Msg("FIREBASE_CONFIG vacío: arrancando en modo degradado, solo /api/health disponible")
	}

	medicamentoRepo := infrafs.NewMedicamentoRepository(store)
	movimientoRepo := infrafs.NewMovimientoRepository(store)

	medicamentoUC := usecase.NewMedicamentoUseCase(medicamentoRepo, movimientoRepo)
	movimientoUC := usecase.NewMovimientoUseCase(medicamentoRepo, movimientoRepo)
	inventarioUC := usecase.NewInventarioUseCase(medicamentoRepo, movimientoRepo, log)
	reporteUC := report.NewUseCase(medicamentoRepo, movimientoRepo, infraexcel.NewRenderer(), infrapdf.NewRenderer())

	verifier := firebaseauth.NewVerifier(store.Auth)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Medicamentos API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		MedicamentoUC: medicamentoUC,
		MovimientoUC:  movimientoUC,
		InventarioUC:  inventarioUC,
		ReporteUC:     reporteUC,
		Verifier:      verifier,
		Disponible:    store.Disponible,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
