package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Pratiable/22percent/internal/adapters/http/middleware"
	"github.com/Pratiable/22percent/internal/adapters/http/routes"
	"github.com/Pratiable/22percent/internal/adapters/persistence/models"
	"github.com/Pratiable/22percent/internal/config"
	"github.com/Pratiable/22percent/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "github.com/Pratiable/22percent/docs" // Swagger docs
)

// @title 22Percent Investment API
// @version 1.0
// @description P2P lending investment tracker API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@22percent.co.kr

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host api.22percent.co.kr
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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

	// Seed master data (banks and sample deals)
	if err := config.SeedMasterData(db); err != nil {
		log.Printf("⚠️ Warning: Failed to seed master data: %v", err)
	}

	// Start settlement cron (00:10 daily, marks due paybacks as paid)
	settlementService := services.NewSettlementService(db)
	settlementService.Start()
	defer settlementService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "22Percent Investment API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
