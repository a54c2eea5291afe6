package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/medicamentos-api/internal/application/report"
	"github.com/tu-usuario/medicamentos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	MedicamentoUC *usecase.MedicamentoUseCase
	MovimientoUC  *usecase.MovimientoUseCase
	InventarioUC  *usecase.InventarioUseCase
	ReporteUC     *report.UseCase
	Verifier      TokenVerifier
	// Disponible indica si hay conexión con Firestore. Con false el
	// servicio opera en modo degradado: solo /api/health responde.
	Disponible func() bool
}

// Router registra las rutas de la API. Las lecturas son públicas; las
// mutaciones requieren Bearer token verificado contra Firebase.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Health (público, también en modo degradado)
	healthHandler := NewHealthHandler(deps.Disponible)
	api.Get("/health", healthHandler.Health)

	// Todo lo demás exige base de datos disponible
	datos := api.Group("/", RequireStore(deps.Disponible))
	protegido := AuthMiddleware(deps.Verifier)

	// Medicamentos
	medicamentos := datos.Group("/medicamentos")
	medicamentoHandler := NewMedicamentoHandler(deps.MedicamentoUC)
	medicamentos.Get("/", medicamentoHandler.List)
	medicamentos.Post("/", protegido, medicamentoHandler.Create)
	medicamentos.Put("/:id", protegido, medicamentoHandler.Update)
	medicamentos.Delete("/:id", protegido, medicamentoHandler.Delete)

	// Movimientos
	movimientos := datos.Group("/movimientos")
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	movimientos.Get("/", movimientoHandler.List)
	movimientos.Post("/", protegido, movimientoHandler.Create)
	movimientos.Put("/:id", protegido, movimientoHandler.Update)
	movimientos.Delete("/:id", protegido, movimientoHandler.Delete)

	// Inventario y estadísticas (lecturas derivadas)
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	datos.Get("/inventario", inventarioHandler.Snapshot)
	datos.Get("/estadisticas", inventarioHandler.Estadisticas)
	datos.Get("/analisis/demanda", inventarioHandler.Demanda)

	// Reportes descargables
	reportes := datos.Group("/reportes")
	reporteHandler := NewReporteHandler(deps.ReporteUC)
	reportes.Get("/semanal-excel", reporteHandler.SemanalExcel)
	reportes.Get("/quincenal-excel", reporteHandler.QuincenalExcel)
	reportes.Get("/semanal-pdf", reporteHandler.SemanalPDF)
	reportes.Get("/quincenal-pdf", reporteHandler.QuincenalPDF)
}
