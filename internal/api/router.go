package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/freelancer-toolkit/api/docs"
	"github.com/freelancer-toolkit/api/internal/api/handler"
	"github.com/freelancer-toolkit/api/internal/api/middleware"
	"github.com/freelancer-toolkit/api/internal/core/domain"
	"github.com/freelancer-toolkit/api/internal/core/service"
	mongodb "github.com/freelancer-toolkit/api/internal/infrastructure/db/mongo"
	redisdb "github.com/freelancer-toolkit/api/internal/infrastructure/db/redis"
	"github.com/freelancer-toolkit/api/internal/infrastructure/extapi/exchangerate"
	"github.com/freelancer-toolkit/api/internal/infrastructure/extapi/places"
	"github.com/freelancer-toolkit/api/internal/infrastructure/extapi/timezone"
	"github.com/freelancer-toolkit/api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("toolkit"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	invoiceRepo := mongodb.NewInvoiceRepository(db)
	workspaceRepo := mongodb.NewWorkspaceRepository(db)
	conversionRepo := mongodb.NewConversionRepository(db)

	// --- External providers ---
	exchangeClient := exchangerate.NewClient(cfg.External.ExchangeAPIKey, cfg.External.ExchangeBaseURL)
	placesClient := places.NewClient(cfg.External.PlacesAPIKey, cfg.External.PlacesBaseURL)
	timezoneClient := timezone.NewClient(cfg.External.TimezoneAPIKey, cfg.External.TimezoneBaseURL)
	rateCache := redisdb.NewRateCache(rdb)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	adminService := service.NewAdminService(userRepo, taskRepo, invoiceRepo, log)
	taskService := service.NewTaskService(taskRepo, log)
	projectService := service.NewProjectService(projectRepo, invoiceRepo, log)
	invoiceService := service.NewInvoiceService(invoiceRepo, log)
	workspaceService := service.NewWorkspaceService(placesClient, workspaceRepo, log)
	currencyService := service.NewCurrencyService(exchangeClient, rateCache, conversionRepo, log)
	timezoneService := service.NewTimezoneService(placesClient, timezoneClient)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, cfg.TokenTTL)
	adminHandler := handler.NewAdminHandler(adminService)
	taskHandler := handler.NewTaskHandler(taskService)
	projectHandler := handler.NewProjectHandler(projectService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	workspaceHandler := handler.NewWorkspaceHandler(workspaceService)
	currencyHandler := handler.NewCurrencyHandler(currencyService)
	timezoneHandler := handler.NewTimezoneHandler(timezoneService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authRequired := middleware.Auth(tokenService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Open routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated routes ---
	auth := e.Group("", authRequired)

	auth.GET("/protected", authHandler.Protected)

	auth.POST("/tasks", taskHandler.Create)
	auth.GET("/tasks", taskHandler.List)
	auth.GET("/tasks/:id", taskHandler.Get)
	auth.PUT("/tasks/:id", taskHandler.Update)
	auth.DELETE("/tasks/:id", taskHandler.Delete)

	auth.POST("/projects", projectHandler.Create)
	auth.GET("/projects", projectHandler.List)
	auth.GET("/projects/:id", projectHandler.Get)
	auth.PUT("/projects/:id", projectHandler.Update)
	auth.DELETE("/projects/:id", projectHandler.Delete)
	auth.GET("/projects/:id/earnings", projectHandler.Earnings)

	auth.POST("/invoices", invoiceHandler.Create)
	auth.GET("/invoices", invoiceHandler.List)
	auth.GET("/invoices/:id", invoiceHandler.Get)
	auth.PUT("/invoices/:id", invoiceHandler.Update)
	auth.DELETE("/invoices/:id", invoiceHandler.Delete)

	auth.GET("/workspaces/search", workspaceHandler.Search)
	auth.POST("/workspaces", workspaceHandler.Save)
	auth.GET("/workspaces", workspaceHandler.List)
	auth.GET("/workspaces/:id", workspaceHandler.Get)
	auth.DELETE("/workspaces/:id", workspaceHandler.Delete)

	auth.GET("/currency", currencyHandler.Convert)
	auth.POST("/currency-conversions", currencyHandler.SaveConversion)
	auth.GET("/currency-conversions", currencyHandler.ListConversions)
	auth.DELETE("/currency-conversions/:id", currencyHandler.DeleteConversion)

	auth.GET("/timezones", timezoneHandler.Lookup)

	// --- Admin routes ---
	admin := e.Group("/admin", authRequired, adminOnly)

	admin.GET("/users", adminHandler.ListUsers)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.PATCH("/users/:id/role", adminHandler.ChangeRole)
	admin.PATCH("/users/:id/suspend", adminHandler.SetSuspended)
	admin.GET("/tasks", adminHandler.ListAllTasks)
	admin.GET("/stats", adminHandler.Stats)

	return e
}
