package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/aladinbajra/youtube-trending-ai/internal/handler"
	"github.com/aladinbajra/youtube-trending-ai/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Video  *handler.VideoHandler
	Charts *handler.ChartsHandler
	Stats  *handler.StatsHandler
	AI     *handler.AIHandler
	Health *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health and metrics (before API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api")

	// Video routes
	videoLimit := middleware.NewVideoRateLimiter().Handler()
	api.Get("/videos", h.Video.List, videoLimit)
	api.Get("/videos/search", h.Video.Search, videoLimit)
	api.Get("/videos/:videoId/history", h.Video.GetHistory, middleware.NewHistoryRateLimiter().Handler())

	// Chart routes
	chartsLimit := middleware.NewChartsRateLimiter().Handler()
	charts := api.Group("/charts", chartsLimit)
	charts.Get("/views-over-time", h.Charts.ViewsOverTime)
	charts.Get("/top-videos", h.Charts.TopVideos)
	charts.Get("/virality-histogram", h.Charts.Histogram)
	charts.Get("/virality-distribution", h.Charts.Distribution)
	charts.Get("/country-performance", h.Charts.CountryPerformance)
	charts.Get("/engagement-scatter", h.Charts.Scatter)
	charts.Get("/timeline", h.Charts.Timeline)
	charts.Get("/publishing-heatmap", h.Charts.Heatmap)

	// Dashboard summary
	api.Get("/analytics/summary", h.Charts.Summary, chartsLimit)

	// Stats
	api.Get("/stats", h.Stats.GetStats, middleware.NewStatsRateLimiter().Handler())

	// AI tool passthrough
	aiLimit := middleware.NewAIRateLimiter().Handler()
	ai := api.Group("/ai", aiLimit)
	ai.Post("/analyze-video", h.AI.Proxy)
	ai.Post("/generate-titles", h.AI.Proxy)
	ai.Get("/trending-topics", h.AI.Proxy)
	ai.Get("/insights", h.AI.Proxy)
	ai.Post("/explain-score", h.AI.Proxy)
}
