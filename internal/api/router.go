package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/warungkita/food-ordering/internal/api/handler"
	"github.com/warungkita/food-ordering/internal/api/middleware"
	"github.com/warungkita/food-ordering/internal/core/ports"
)

// Deps carries everything the router needs; main wires the concrete backend.
type Deps struct {
	Auth    ports.AuthService
	Orders  ports.OrderService
	Menu    ports.MenuService
	Backend string
	Store   handler.Pinger
	Logger  zerolog.Logger

	// Registerer overrides the Prometheus registry; nil means the default.
	Registerer prometheus.Registerer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "foodorder",
		Registerer: deps.Registerer,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	foodHandler := handler.NewFoodHandler(deps.Menu, deps.Orders)
	sessionRequired := middleware.Session(deps.Auth)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, sessionRequired)

	// --- Food routes ---
	food := e.Group("/api/food")
	food.GET("/menu", foodHandler.Menu)
	food.POST("/order", foodHandler.PlaceOrder, sessionRequired)
	food.GET("/orders", foodHandler.Orders, sessionRequired)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Backend, deps.Store)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store up?

	// --- Operational surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
