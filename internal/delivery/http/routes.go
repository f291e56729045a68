package http

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/seeker/backend/config"
	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.tmpl")))

	// Global middleware
	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggerMiddleware(logger.Named("access")))
	router.Use(MetricsMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/", handler.Index)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/examples", handler.ListExamples)
		v1.POST("/examples", handler.AddExample)
		v1.POST("/train", handler.Train)
		v1.GET("/search", handler.Search)
		v1.POST("/search", handler.Search)
	}

	return router
}
