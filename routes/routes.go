package routes

import (
	"net/http"
	"time"

	"fixmate/handlers"
	"fixmate/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RegisterIntakeRoutes registers the intake and confirmation endpoints.
func RegisterIntakeRoutes(r *gin.Engine, hb *handlers.HandlerBundle, maxRequestsPerMin int, logger *zap.Logger) {
	api := r.Group("/api/intake")
	{
		api.Use(middleware.RateLimitMiddleware(maxRequestsPerMin, logger))
		api.POST("", hb.IntakeHandler)
		api.POST("/confirm", hb.ConfirmHandler)
	}
}

// RegisterOpsRoutes registers health and metrics endpoints.
func RegisterOpsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	health := hb.HealthHandler
	if health == nil {
		health = func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		}
	}
	r.GET("/health", health)

	metrics := hb.MetricsHandler
	if metrics == nil {
		metrics = gin.WrapH(promhttp.Handler())
	}
	r.GET("/metrics", metrics)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, maxRequestsPerMin int, logger *zap.Logger) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", handlers.IdempotencyKeyHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader, "Idempotent-Replayed"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterIntakeRoutes(r, hb, maxRequestsPerMin, logger)
	RegisterOpsRoutes(r, hb)
}
