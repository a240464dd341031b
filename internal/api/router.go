package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/tourkart/booking-gateway/internal/api/handler"
	"github.com/tourkart/booking-gateway/internal/api/middleware"
	"github.com/tourkart/booking-gateway/internal/core/domain"
	"github.com/tourkart/booking-gateway/internal/core/ports"
)

// Deps carries everything the router needs; all services are wired in main.
type Deps struct {
	Gate      ports.SessionGate
	Verifier  ports.CredentialVerifier
	Catalog   ports.CatalogClient
	Flows     ports.BookingFlowService
	Admin     ports.AdminService
	Redis     *redis.Client
	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Verifier, deps.Gate)
	tourHandler := handler.NewTourHandler(deps.Catalog)
	bookingHandler := handler.NewBookingHandler(deps.Flows)
	adminHandler := handler.NewAdminHandler(deps.Admin)

	authMiddleware := middleware.Auth(deps.JWTSecret, deps.Gate)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/tours", tourHandler.List)
	v1.GET("/tours/:id", tourHandler.Get)
	v1.POST("/tours/:id/booking", bookingHandler.Start)
	v1.GET("/tours/:id/booking", bookingHandler.View)
	v1.PUT("/tours/:id/booking/draft", bookingHandler.UpdateDraft)
	v1.POST("/tours/:id/booking/review", bookingHandler.Review)
	v1.POST("/tours/:id/booking/payment", bookingHandler.Payment)
	v1.DELETE("/tours/:id/booking", bookingHandler.Cancel)

	// --- Admin routes (privileged role) ---
	admin := e.Group("/admin", authMiddleware, middleware.RequireRole(deps.Gate, domain.RoleAdmin))
	admin.GET("/bookings", adminHandler.Bookings)
	admin.GET("/stats", adminHandler.Stats)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
