package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/aladinbajra/youtube-trending-ai/internal/analytics"
	"github.com/aladinbajra/youtube-trending-ai/internal/gateway"
	"github.com/aladinbajra/youtube-trending-ai/internal/middleware"
	"github.com/aladinbajra/youtube-trending-ai/internal/model"
)

// ChartsHandler serves chart-ready data: each endpoint fetches the current
// batch through the gateway and runs one pure shaper over it. Shapers never
// mutate the batch, so the same fetch could feed any number of them.
type ChartsHandler struct {
	gw *gateway.Gateway
}

func NewChartsHandler(gw *gateway.Gateway) *ChartsHandler {
	return &ChartsHandler{gw: gw}
}

func (h *ChartsHandler) fetch(c fiber.Ctx) []model.Video {
	return h.gw.GetVideos(c.Context(), gateway.VideoQuery{
		Limit:    fiber.Query[int](c, "limit", 100),
		Category: middleware.NormalizeCategory(fiber.Query[string](c, "category", "all")),
	})
}

// ViewsOverTime handles GET /api/charts/views-over-time. An optional
// cutoff=YYYY-MM-DD drops days after it (the sample corpus has a synthetic
// future-dated tail).
func (h *ChartsHandler) ViewsOverTime(c fiber.Ctx) error {
	videos := h.fetch(c)

	var cutoff time.Time
	if raw := fiber.Query[string](c, "cutoff"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", "cutoff must be a YYYY-MM-DD date")
		}
		// Inclusive bound: keep the whole cutoff day.
		cutoff = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return c.JSON(analytics.ViewsOverTime(videos, cutoff))
}

// TopVideos handles GET /api/charts/top-videos.
func (h *ChartsHandler) TopVideos(c fiber.Ctx) error {
	videos := h.fetch(c)
	return c.JSON(analytics.TopVideosByViews(videos, fiber.Query[int](c, "n", 10)))
}

// Histogram handles GET /api/charts/virality-histogram.
func (h *ChartsHandler) Histogram(c fiber.Ctx) error {
	videos := h.fetch(c)
	return c.JSON(analytics.ViralityHistogram(videos))
}

// Distribution handles GET /api/charts/virality-distribution.
func (h *ChartsHandler) Distribution(c fiber.Ctx) error {
	videos := h.fetch(c)
	return c.JSON(analytics.ViralityDistribution(videos))
}

// CountryPerformance handles GET /api/charts/country-performance.
func (h *ChartsHandler) CountryPerformance(c fiber.Ctx) error {
	videos := h.fetch(c)
	return c.JSON(analytics.CountryPerformanceAll(videos))
}

// Scatter handles GET /api/charts/engagement-scatter.
func (h *ChartsHandler) Scatter(c fiber.Ctx) error {
	videos := h.fetch(c)
	return c.JSON(analytics.EngagementScatter(videos, fiber.Query[int](c, "points", 50)))
}

// Timeline handles GET /api/charts/timeline.
func (h *ChartsHandler) Timeline(c fiber.Ctx) error {
	videos := h.fetch(c)
	titles, points := analytics.MultiVideoTimeline(videos, fiber.Query[int](c, "days", 30))
	return c.JSON(fiber.Map{"titles": titles, "points": points})
}

// Heatmap handles GET /api/charts/publishing-heatmap.
func (h *ChartsHandler) Heatmap(c fiber.Ctx) error {
	videos := h.fetch(c)
	return c.JSON(analytics.PublishingHeatmap(videos))
}

// Summary handles GET /api/analytics/summary — the dashboard header block:
// key metrics, virality indicators, and the top-countries table in one
// payload.
func (h *ChartsHandler) Summary(c fiber.Ctx) error {
	videos := h.fetch(c)
	return c.JSON(fiber.Map{
		"metrics":    analytics.ComputeKeyMetrics(videos),
		"indicators": analytics.ComputeViralityIndicators(videos),
		"countries":  analytics.AggregateCountries(videos),
	})
}
