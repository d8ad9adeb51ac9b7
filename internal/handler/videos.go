package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aladinbajra/youtube-trending-ai/internal/analytics"
	"github.com/aladinbajra/youtube-trending-ai/internal/gateway"
	"github.com/aladinbajra/youtube-trending-ai/internal/middleware"
	"github.com/aladinbajra/youtube-trending-ai/internal/model"
)

type VideoHandler struct {
	gw *gateway.Gateway
}

func NewVideoHandler(gw *gateway.Gateway) *VideoHandler {
	return &VideoHandler{gw: gw}
}

// List handles GET /api/videos — the raw batch, as a plain JSON array.
// Category filtering happens upstream in live mode and locally in sample
// mode; either way the caller just gets an array, possibly empty.
func (h *VideoHandler) List(c fiber.Ctx) error {
	limit := fiber.Query[int](c, "limit", 100)
	offset := fiber.Query[int](c, "offset", 0)
	category := middleware.NormalizeCategory(fiber.Query[string](c, "category", "all"))

	videos := h.gw.GetVideos(c.Context(), gateway.VideoQuery{
		Limit:    limit,
		Offset:   offset,
		Category: category,
	})
	return c.JSON(videos)
}

// Search handles GET /api/videos/search — the composed dashboard list:
// search text, filters, sort, and a 1-based page, returned as a page
// envelope with totals.
func (h *VideoHandler) Search(c fiber.Ctx) error {
	limit := fiber.Query[int](c, "limit", 100)
	offset := fiber.Query[int](c, "offset", 0)
	category := middleware.NormalizeCategory(fiber.Query[string](c, "category", "all"))

	query, errMsg := parseQuery(c)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", errMsg)
	}
	page := fiber.Query[int](c, "page", 1)

	videos := h.gw.GetVideos(c.Context(), gateway.VideoQuery{
		Limit:    limit,
		Offset:   offset,
		Category: category,
	})
	return c.JSON(analytics.Compose(videos, query, page, analytics.DefaultPageSize))
}

// GetHistory handles GET /api/videos/:videoId/history.
func (h *VideoHandler) GetHistory(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateVideoID(c.Params("videoId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", errMsg)
	}
	return c.JSON(h.gw.GetVideoHistory(c.Context(), videoID))
}

// parseQuery reads the compose inputs from the query string. Filter
// predicates become active only when their parameter is present, so
// "min_views=0" is a real bound while an absent parameter is no filter
// at all.
func parseQuery(c fiber.Ctx) (analytics.Query, string) {
	q := analytics.Query{
		Search: fiber.Query[string](c, "search"),
		Sort: model.SortState{
			Field:     model.SortField(fiber.Query[string](c, "sort", string(model.SortByViews))),
			Direction: model.SortDirection(fiber.Query[string](c, "direction", string(model.SortDesc))),
		},
	}

	switch q.Sort.Field {
	case model.SortByViews, model.SortByLikes, model.SortByComments,
		model.SortByVirality, model.SortByPublishedAt:
	default:
		return q, "sort must be one of views, likes, comments, viralityScore, publishedAt"
	}
	switch q.Sort.Direction {
	case model.SortAsc, model.SortDesc:
	default:
		return q, "direction must be asc or desc"
	}

	if country := fiber.Query[string](c, "country"); country != "" {
		q.Filters.Country = &country
	}
	if c.Request().URI().QueryArgs().Has("min_views") {
		v := int64(fiber.Query[int](c, "min_views"))
		q.Filters.MinViews = &v
	}
	if c.Request().URI().QueryArgs().Has("max_views") {
		v := int64(fiber.Query[int](c, "max_views"))
		q.Filters.MaxViews = &v
	}
	if c.Request().URI().QueryArgs().Has("min_virality") {
		v := fiber.Query[float64](c, "min_virality")
		q.Filters.MinVirality = &v
	}
	return q, ""
}
