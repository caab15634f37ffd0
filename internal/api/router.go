package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoplite/storefront/internal/api/handler"
	"github.com/shoplite/storefront/internal/api/middleware"
	"github.com/shoplite/storefront/internal/core/domain"
	"github.com/shoplite/storefront/internal/core/service"
	"github.com/shoplite/storefront/internal/infrastructure/config"
	storemongo "github.com/shoplite/storefront/internal/infrastructure/db/mongo"
	storeredis "github.com/shoplite/storefront/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	userRepo := storemongo.NewUserRepository(db)
	productRepo := storemongo.NewProductRepository(db)
	categoryRepo := storemongo.NewCategoryRepository(db)
	orderRepo := storemongo.NewOrderRepository(db)
	sessionStore := storeredis.NewSessionStore(rdb, cfg.SessionTTL)

	authService := service.NewAuthService(userRepo)
	catalogService := service.NewCatalogService(productRepo, categoryRepo, log)
	orderService := service.NewOrderService(orderRepo, productRepo, log)
	userService := service.NewUserService(userRepo, log)
	statsService := service.NewStatsService(productRepo, orderRepo, userRepo)

	authHandler := handler.NewAuthHandler(authService, sessionStore, cfg.SessionTTL)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(statsService)

	requireSession := middleware.Session(sessionStore, handler.SessionCookie)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	apiGroup := e.Group("/api")

	// --- Auth routes ---
	auth := apiGroup.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, requireSession)
	auth.GET("/me", authHandler.Me, requireSession)

	// --- Catalog routes: reads are public, writes are admin-only ---
	products := apiGroup.Group("/products")
	products.GET("", catalogHandler.ListProducts)
	products.GET("/:id", catalogHandler.GetProduct)
	products.POST("", catalogHandler.CreateProduct, requireSession, requireAdmin)
	products.PUT("/:id", catalogHandler.UpdateProduct, requireSession, requireAdmin)
	products.DELETE("/:id", catalogHandler.DeleteProduct, requireSession, requireAdmin)

	categories := apiGroup.Group("/categories")
	categories.GET("", catalogHandler.ListCategories)
	categories.GET("/:id", catalogHandler.GetCategory)
	categories.POST("", catalogHandler.CreateCategory, requireSession, requireAdmin)
	categories.PUT("/:id", catalogHandler.UpdateCategory, requireSession, requireAdmin)
	categories.DELETE("/:id", catalogHandler.DeleteCategory, requireSession, requireAdmin)

	// --- Order routes: any signed-in user may list/create, admins update status ---
	orders := apiGroup.Group("/orders", requireSession)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("", orderHandler.Create)
	orders.PUT("/:id", orderHandler.UpdateStatus, requireAdmin)

	// --- Admin routes ---
	users := apiGroup.Group("/users", requireSession, requireAdmin)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	admin := apiGroup.Group("/admin", requireSession, requireAdmin)
	admin.GET("/stats", adminHandler.Stats)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
