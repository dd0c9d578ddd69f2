package router

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/healthcare-api/internal/handler/health"
	"github.com/jwalitptl/healthcare-api/internal/handler/prometheus"
	"github.com/jwalitptl/healthcare-api/internal/middleware"
)

// Handler registers a route group under /api.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	Debug     bool
	RateLimit rate.Limit
	RateBurst int
}

type Router struct {
	engine *gin.Engine
}

func NewRouter(
	cfg Config,
	healthH *health.Handler,
	metricsH *prometheus.Handler,
	handlers ...Handler,
) *Router {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		metricsH.Middleware(),
		middleware.CORS(middleware.DefaultCORSConfig()),
	)

	if cfg.RateLimit > 0 {
		rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:  cfg.RateLimit,
			Burst: cfg.RateBurst,
		})
		engine.Use(rateLimiter.RateLimit())
	}

	// Probes and metrics live at the root, outside the /api surface.
	healthH.RegisterRoutes(engine)
	metricsH.RegisterRoutes(engine)

	api := engine.Group("/api")
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}

	return &Router{engine: engine}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
