package routes

import (
	"assetguard/internal/adapters/http/handlers"
	"assetguard/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// Setup configures all routes for the application. The engine is constructed
// in main (it outlives the HTTP layer: the reconcile scheduler and shutdown
// drain hang off it) and injected here.
func Setup(app *fiber.App, engine *services.LifecycleService) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(engine)
	snapshotHandler := handlers.NewSnapshotHandler(engine)
	assetHandler := handlers.NewAssetHandler(engine)
	employeeHandler := handlers.NewEmployeeHandler(engine)
	maintenanceHandler := handlers.NewMaintenanceHandler(engine)
	requestHandler := handlers.NewRequestHandler(engine)
	adminHandler := handlers.NewAdminHandler(engine)

	// Health endpoints
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1
	v1 := app.Group("/api/v1")

	v1.Get("/snapshot", snapshotHandler.Get)

	assets := v1.Group("/assets")
	assets.Get("/", assetHandler.List)
	assets.Post("/", assetHandler.Create)
	assets.Put("/:id", assetHandler.Update)
	assets.Delete("/:id", assetHandler.Delete)
	assets.Post("/:id/assign", assetHandler.Assign)
	assets.Post("/:id/return", assetHandler.Return)

	employees := v1.Group("/employees")
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)

	v1.Get("/assignments", snapshotHandler.Assignments)

	maintenance := v1.Group("/maintenance")
	maintenance.Get("/", maintenanceHandler.List)
	maintenance.Post("/", maintenanceHandler.Create)
	maintenance.Patch("/:id/status", maintenanceHandler.UpdateStatus)

	requests := v1.Group("/requests")
	requests.Get("/", requestHandler.List)
	requests.Post("/", requestHandler.Create)
	requests.Post("/:id/approve", requestHandler.Approve)
	requests.Post("/:id/reject", requestHandler.Reject)

	v1.Post("/admin/reconcile", adminHandler.Reconcile)
}
