package api

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gcbaptista/feedrank/config"
	"github.com/gcbaptista/feedrank/internal/chart"
	"github.com/gcbaptista/feedrank/internal/stats"
	"github.com/gcbaptista/feedrank/services"
)

//go:embed templates/*.html
var templateFS embed.FS

// API holds dependencies for API handlers, primarily the feed pipeline.
type API struct {
	feed services.FeedProcessor
}

// NewAPI creates a new API handler structure.
func NewAPI(feed services.FeedProcessor) *API {
	return &API{feed: feed}
}

// NewRouter builds a gin engine with the standard middleware chain and all routes.
func NewRouter(feed services.FeedProcessor, cfg config.ServerConfig, logger *zap.Logger) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware())
	if cfg.MaxBodyBytes > 0 {
		router.Use(RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	}

	SetupRoutes(router, feed)
	return router
}

// SetupRoutes defines all the routes of the feed reranker.
func SetupRoutes(router *gin.Engine, feed services.FeedProcessor) {
	apiHandler := NewAPI(feed)

	router.SetHTMLTemplate(pageTemplate())

	// Health check and metrics routes
	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Interactive page
	router.GET("/", apiHandler.PageHandler)
	router.POST("/", apiHandler.PageSubmitHandler)

	// JSON routes
	apiRoutes := router.Group("/api")
	{
		apiRoutes.GET("/categories", apiHandler.CategoriesHandler)  // Priority table
		apiRoutes.POST("/feed", apiHandler.FeedHandler)             // Classify texts, optionally rerank
		apiRoutes.POST("/rerank", apiHandler.RerankHandler)         // Rerank already-labelled posts
		apiRoutes.POST("/statistics", apiHandler.StatisticsHandler) // Summarize any collection
	}

	router.NoRoute(SendNotFoundError)
}

func pageTemplate() *template.Template {
	funcs := template.FuncMap{
		"pct":    stats.FormatPercentage,
		"label":  chart.Label,
		"add1":   func(i int) int { return i + 1 },
		"double": func(f float64) float64 { return 2 * f },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
