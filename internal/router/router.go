package router

import (
	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/records-api/internal/config"
	"github.com/jwalitptl/records-api/internal/handler/health"
	"github.com/jwalitptl/records-api/internal/handler/prometheus"
	"github.com/jwalitptl/records-api/internal/middleware"
	apperrors "github.com/jwalitptl/records-api/pkg/errors"
	"github.com/jwalitptl/records-api/pkg/httputil"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// Handlers groups the API handlers of both services. Handlers belonging to a
// service that is not served may be nil.
type Handlers struct {
	Trips         Handler
	Clients       Handler
	Patients      Handler
	Prescriptions Handler
	Health        *health.Handler
	Metrics       *prometheus.Handler
}

type RouterConfig struct {
	Server    config.ServerConfig
	RateLimit config.RateLimitConfig
}

type Router struct {
	engine   *gin.Engine
	config   RouterConfig
	handlers Handlers
}

func NewRouter(cfg RouterConfig, handlers Handlers) *Router {
	engine := gin.New() // Use New() instead of Default() for more control

	r := &Router{
		engine:   engine,
		config:   cfg,
		handlers: handlers,
	}

	// Add core middlewares
	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
	)
	if handlers.Metrics != nil {
		engine.Use(handlers.Metrics.Middleware())
	}
	engine.Use(
		middleware.SecurityHeaders(middleware.DefaultSecurityConfig()),
		middleware.CORS(corsConfig(cfg.Server)),
		middleware.Timeout(cfg.Server.RequestTimeout),
		middleware.SizeLimit(cfg.Server.MaxBodyBytes),
	)

	if cfg.RateLimit.Enabled {
		rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RPS:       cfg.RateLimit.RequestsPerSecond,
			Burst:     cfg.RateLimit.Burst,
			ClientTTL: cfg.RateLimit.ClientTTL,
		})
		engine.Use(rateLimiter.RateLimit())
	}

	engine.NoRoute(func(c *gin.Context) {
		httputil.RespondWithError(c, apperrors.NewNotFound("Resource not found", nil))
	})

	return r
}

// Setup registers the routes of the configured service.
func (r *Router) Setup() {
	if r.handlers.Health != nil {
		r.handlers.Health.RegisterRoutes(r.engine)
	}
	if r.handlers.Metrics != nil {
		r.engine.GET("/metrics", r.handlers.Metrics.Handler())
	}

	api := r.engine.Group("/api")

	service := r.config.Server.Service
	if service == config.ServiceTravel || service == config.ServiceAll {
		register(api, r.handlers.Trips, r.handlers.Clients)
	}
	if service == config.ServiceClinic || service == config.ServiceAll {
		register(api, r.handlers.Patients, r.handlers.Prescriptions)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func register(rg *gin.RouterGroup, handlers ...Handler) {
	for _, h := range handlers {
		if h != nil {
			h.RegisterRoutes(rg)
		}
	}
}

func corsConfig(server config.ServerConfig) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	if len(server.AllowedOrigins) > 0 {
		cors.AllowOrigins = server.AllowedOrigins
	}
	return cors
}
