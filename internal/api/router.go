package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/elibrary/library-system/internal/api/handler"
	"github.com/elibrary/library-system/internal/api/middleware"
	"github.com/elibrary/library-system/internal/core/domain"
	"github.com/elibrary/library-system/internal/core/ports"
	"github.com/elibrary/library-system/internal/core/service"
	"github.com/elibrary/library-system/internal/infrastructure/config"
	redisinfra "github.com/elibrary/library-system/internal/infrastructure/db/redis"
	"github.com/elibrary/library-system/internal/infrastructure/db/supabase"
	"github.com/elibrary/library-system/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the login limiter is then disabled.
func NewRouter(store *supabase.Client, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("elibrary"))

	// --- Dependencies ---
	uploads, err := storage.NewLocal(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	var limiter ports.LoginLimiter
	if rdb != nil {
		limiter = redisinfra.NewLoginLimiter(rdb)
	}

	userRepo := supabase.NewUserRepository(store)
	bookRepo := supabase.NewBookRepository(store)
	categoryRepo := supabase.NewCategoryRepository(store)

	tokenService := service.NewTokenService([]byte(cfg.JWTSecret.Value()), cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, limiter, log)
	bookService := service.NewBookService(bookRepo, uploads, cfg.PublicBaseURL, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	exportService := service.NewExportService(bookRepo, &http.Client{Timeout: 30 * time.Second}, cfg.DownloadDir, log)

	authHandler := handler.NewAuthHandler(authService)
	bookHandler := handler.NewBookHandler(bookService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	fileHandler := handler.NewFileHandler(uploads, exportService)

	// The gate runs on every request ahead of any role check.
	e.Use(middleware.Auth(tokenService, authService, log))

	anyAuth := middleware.RequireRoles(domain.RoleUser, domain.RoleAdmin)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Auth routes (public) ---
	e.POST("/users/register", authHandler.Register)
	e.POST("/users/login", authHandler.Login)

	// --- Book catalog ---
	e.GET("/books", bookHandler.List, anyAuth)
	e.GET("/books/search", bookHandler.Search, anyAuth)
	e.GET("/books/:book_id", bookHandler.Get, anyAuth)
	e.POST("/books", bookHandler.Create, adminOnly)
	e.PUT("/books/:book_id", bookHandler.Update, adminOnly)
	e.DELETE("/books/:book_id", bookHandler.Delete, adminOnly)
	e.POST("/books/export", fileHandler.Export, adminOnly)

	// --- Categories ---
	e.GET("/categories", categoryHandler.List, anyAuth)
	e.POST("/categories", categoryHandler.Create, adminOnly)
	e.PUT("/categories/:category_id", categoryHandler.Update, adminOnly)
	e.DELETE("/categories/:category_id", categoryHandler.Delete, adminOnly)

	// --- Files ---
	e.GET("/uploads/:filename", fileHandler.Serve, adminOnly)
	downloads := e.Group("/downloads", anyAuth)
	downloads.Static("/", cfg.DownloadDir)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(store, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
