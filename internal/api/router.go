package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/assetdesk/inventory-api/internal/api/handler"
	"github.com/assetdesk/inventory-api/internal/api/middleware"
	"github.com/assetdesk/inventory-api/internal/core/domain"
	"github.com/assetdesk/inventory-api/internal/core/ports"
	"github.com/assetdesk/inventory-api/internal/core/service"
	mongodb "github.com/assetdesk/inventory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/assetdesk/inventory-api/internal/infrastructure/db/redis"
	httphandlers "github.com/assetdesk/inventory-api/internal/infrastructure/http/handlers"
)

// NewRouter builds the Echo instance with all routes registered. Every route
// under /api except the two auth routes sits behind the Auth middleware;
// role-restricted routes additionally carry an RBAC allow-list.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens ports.TokenService, reportCacheTTL time.Duration, env string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, env)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	assetRepo := mongodb.NewAssetRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)

	var reportCache ports.ReportCache
	if rdb != nil {
		reportCache = redisdb.NewReportCache(rdb, reportCacheTTL)
	}

	authService := service.NewAuthService(userRepo, tokens, log)
	assetService := service.NewAssetService(assetRepo, userRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	userService := service.NewUserService(userRepo, log)
	reportService := service.NewReportService(assetRepo, userRepo, reportCache, log)

	authHandler := handler.NewAuthHandler(authService)
	assetHandler := handler.NewAssetHandler(assetService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	userHandler := handler.NewUserHandler(userService)
	reportHandler := handler.NewReportHandler(reportService)

	authn := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	adminOrManager := middleware.RBAC(domain.RoleAdmin, domain.RoleManager)

	// --- Auth routes (public) ---
	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	// --- Assets ---
	assets := e.Group("/api/assets", authn)
	assets.POST("", assetHandler.Create, adminOnly)
	assets.GET("", assetHandler.List)
	assets.GET("/:id", assetHandler.Get)
	assets.PUT("/:id", assetHandler.Update, adminOrManager)
	assets.DELETE("/:id", assetHandler.Delete, adminOnly)

	// --- Categories ---
	categories := e.Group("/api/categories", authn)
	categories.POST("", categoryHandler.Create, adminOnly)
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.PUT("/:id", categoryHandler.Update, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, adminOnly)

	// --- Users (admin only) ---
	users := e.Group("/api/users", authn, adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.UpdateRole)
	users.DELETE("/:id", userHandler.Delete)

	// --- Reports ---
	reports := e.Group("/api/reports", authn)
	reports.GET("/assets-by-category", reportHandler.AssetsByCategory, adminOrManager)
	reports.GET("/assets-by-location", reportHandler.AssetsByLocation, adminOrManager)
	reports.GET("/damaged-assets", reportHandler.DamagedAssets, adminOrManager)
	reports.GET("/low-stock", reportHandler.LowStock, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// Unknown routes get the same envelope as every other error.
	echo.NotFoundHandler = func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "Route not found")
	}

	return e
}
