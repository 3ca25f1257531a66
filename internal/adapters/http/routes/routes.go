package routes

import (
	"github.com/Pratiable/22percent/internal/adapters/http/handlers"
	"github.com/Pratiable/22percent/internal/adapters/http/middleware"
	"github.com/Pratiable/22percent/internal/adapters/persistence/repositories"
	"github.com/Pratiable/22percent/internal/config"
	"github.com/Pratiable/22percent/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	bankRepo := repositories.NewBankRepository(db)
	dealRepo := repositories.NewDealRepository(db)
	investmentRepo := repositories.NewInvestmentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, bankRepo, cfg)
	userService := services.NewUserService(userRepo, bankRepo)
	investmentService := services.NewInvestmentService(db, dealRepo, investmentRepo, userRepo)
	portfolioService := services.NewPortfolioService(investmentRepo)
	summaryService := services.NewSummaryService(userRepo, investmentRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService, portfolioService, summaryService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, authHandler, userHandler, investmentHandler, cfg)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	investmentHandler *handlers.InvestmentHandler,
	cfg *config.Config,
) {
	// Auth routes (public)
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Bank master data (public, cacheable)
	router.Get("/banks", middleware.MasterDataCache(), userHandler.Banks)

	// Profile routes (Authenticated users)
	profileRoutes := router.Group("/users")
	profileRoutes.Use(middleware.AuthMiddleware(cfg))
	setupUserRoutes(profileRoutes, userHandler)

	// Investment routes (Authenticated users)
	investmentRoutes := router.Group("/investments")
	investmentRoutes.Use(middleware.AuthMiddleware(cfg))
	investmentRoutes.Use(middleware.NoCacheHeaders())
	setupInvestmentRoutes(investmentRoutes, investmentHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes with stricter rate limiting
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.Refresh)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupUserRoutes configures user routes (Authenticated)
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/me", handler.Me)
	router.Put("/me/deposit-account", handler.UpdateDepositAccount)

	// Admin only
	router.Get("/", middleware.AdminOnly(), handler.List)
}

// setupInvestmentRoutes configures investment routes (Authenticated)
func setupInvestmentRoutes(router fiber.Router, handler *handlers.InvestmentHandler) {
	router.Get("/", handler.History)
	router.Post("/", handler.Subscribe)
	router.Get("/portfolio", handler.Portfolio)
	router.Get("/summary", handler.Summary)
	router.Get("/export", handler.Export)
	router.Get("/deals", handler.DealInfo)
}
