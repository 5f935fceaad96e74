package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"assetguard/internal/adapters/http/middleware"
	"assetguard/internal/adapters/http/routes"
	"assetguard/internal/adapters/persistence/models"
	"assetguard/internal/adapters/persistence/repositories"
	"assetguard/internal/config"
	"assetguard/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// @title AssetGuard API
// @version 1.0
// @description Asset lifecycle tracking for a single-admin deployment

// @host localhost:3000
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed demo data on a fresh database only
	if err := config.SeedDemoData(db); err != nil {
		log.Printf("⚠️ Warning: Failed to seed demo data: %v", err)
	}

	// Build the lifecycle engine over the durable store and load state
	store := repositories.NewStore(db)
	engine := services.NewLifecycleService(store)
	engine.Load(context.Background())

	// Scheduled consistency-repair pass
	if cfg.Reconcile.Enabled {
		reconciler := services.NewReconcileService(engine, cfg.Reconcile.Spec)
		if err := reconciler.Start(); err != nil {
			log.Fatalf("❌ Failed to start reconcile scheduler: %v", err)
		}
		defer reconciler.Stop()
	}

	// Drain write failures into the log
	go func() {
		for werr := range engine.Errors() {
			log.Printf("⚠️ Stale persisted copy pending reconcile: %v", werr)
		}
	}()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AssetGuard API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, engine)

	// Graceful shutdown
	go gracefulShutdown(app, engine)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown stops the server and drains in-flight durable writes
func gracefulShutdown(app *fiber.App, engine *services.LifecycleService) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}

	// Queued writes are fire-and-forget from the callers' perspective, but a
	// clean exit should not abandon them.
	engine.Flush()
	log.Println("✅ Server stopped gracefully")
}
