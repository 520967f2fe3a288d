package router

import (
	"github.com/curio/backend/internal/infrastructure/auth"
	"github.com/curio/backend/internal/infrastructure/config"
	"github.com/curio/backend/internal/interfaces/http/handler"
	"github.com/curio/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouteRegistrar mounts a set of related routes on a router group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router assembles the gin engine with the middleware chain, health
// probes and the versioned API surface. Every registrar is mounted
// behind authentication.
type Router struct {
	engine     *gin.Engine
	apiVersion string
	registrars []RouteRegistrar
}

// RouterOption configures a Router
type RouterOption func(*Router)

// WithAPIVersion overrides the API version prefix
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// New builds the engine with request id, logging and CORS middleware
// applied globally.
func New(cfg *config.Config, logger *zap.Logger, opts ...RouterOption) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))

	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	} else {
		_ = engine.SetTrustedProxies(nil)
	}

	r := &Router{
		engine:     engine,
		apiVersion: "v1",
		registrars: make([]RouteRegistrar, 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register queues a registrar to be mounted by Setup
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup mounts the health probes and the authenticated API group
func (r *Router) Setup(jwtService *auth.JWTService, health *handler.HealthHandler) {
	r.engine.GET("/health", health.Live)
	r.engine.GET("/health/ready", health.Ready)

	api := r.engine.Group("/api/" + r.apiVersion)
	api.Use(middleware.AuthMiddleware(jwtService))
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
