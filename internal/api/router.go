package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/tivra/storefront-gateway/docs"
	"github.com/tivra/storefront-gateway/internal/api/handler"
	"github.com/tivra/storefront-gateway/internal/api/middleware"
	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/ports"
	"github.com/tivra/storefront-gateway/internal/core/service"
)

// Deps carries everything the router needs; the caller owns construction of
// the outbound client and the session store.
type Deps struct {
	Marketplace  ports.Marketplace
	Sessions     ports.SessionStore
	Redis        *redis.Client // nil when sessions are in-memory
	CookieName   string
	SecureCookie bool
	SessionTTL   time.Duration
	Log          zerolog.Logger
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
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Services ---
	authService := service.NewAuthService(deps.Marketplace, deps.Sessions, deps.Log)
	catalogService := service.NewCatalogService(deps.Marketplace, deps.Sessions, deps.Log)
	enquiryService := service.NewEnquiryService(deps.Marketplace, deps.Sessions, deps.Log)
	orderService := service.NewOrderService(deps.Marketplace, deps.Sessions, deps.Log)
	messageService := service.NewMessageService(deps.Marketplace, deps.Sessions, deps.Log)
	adminService := service.NewAdminService(deps.Marketplace, deps.Sessions, deps.Log)
	dashboardService := service.NewDashboardService(catalogService, enquiryService, orderService, adminService, deps.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, deps.CookieName, deps.SecureCookie, deps.SessionTTL)
	productHandler := handler.NewProductHandler(catalogService)
	enquiryHandler := handler.NewEnquiryHandler(enquiryService)
	orderHandler := handler.NewOrderHandler(orderService)
	messageHandler := handler.NewMessageHandler(messageService)
	adminHandler := handler.NewAdminHandler(adminService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	requireSession := middleware.RequireSession(deps.Sessions, deps.CookieName)
	optionalSession := middleware.OptionalSession(deps.Sessions, deps.CookieName)

	// --- Auth ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/refresh", authHandler.Refresh, requireSession)
	e.POST("/auth/logout", authHandler.Logout, requireSession)
	e.GET("/me", authHandler.Me, requireSession)

	// --- Catalog (browse is public, mutations are seller-only) ---
	e.GET("/products", productHandler.List, optionalSession)
	e.GET("/products/:id", productHandler.Get, optionalSession)
	sellerOnly := []echo.MiddlewareFunc{requireSession, middleware.RBAC(domain.RoleSeller)}
	e.POST("/products", productHandler.Create, sellerOnly...)
	e.PATCH("/products/:id", productHandler.Update, sellerOnly...)
	e.DELETE("/products/:id", productHandler.Delete, sellerOnly...)

	// --- Enquiries ---
	e.GET("/enquiries", enquiryHandler.List, requireSession)
	e.POST("/enquiries", enquiryHandler.Create, requireSession, middleware.RBAC(domain.RoleBuyer))
	e.PATCH("/enquiries/:id/respond", enquiryHandler.Respond, requireSession, middleware.RBAC(domain.RoleSeller))

	// --- Orders and transporter projections ---
	e.GET("/orders", orderHandler.List, requireSession)
	e.POST("/orders", orderHandler.Create, requireSession, middleware.RBAC(domain.RoleBuyer))
	transporterOnly := []echo.MiddlewareFunc{requireSession, middleware.RBAC(domain.RoleTransporter)}
	e.PUT("/orders/:id/status", orderHandler.UpdateStatus, transporterOnly...)
	e.GET("/deliveries", orderHandler.Deliveries, transporterOnly...)
	e.GET("/jobs", orderHandler.Jobs, transporterOnly...)

	// --- Messages ---
	e.GET("/messages", messageHandler.List, requireSession)

	// --- Admin ---
	admin := e.Group("/admin", requireSession, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", adminHandler.Users)
	admin.GET("/analytics", adminHandler.Analytics)
	admin.GET("/audit-logs", adminHandler.AuditLogs)
	admin.PUT("/users/:id/verify", adminHandler.VerifyUser)

	// --- Dashboard ---
	e.GET("/dashboard", dashboardHandler.Get, requireSession)

	// --- Ops ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
