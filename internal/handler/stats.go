package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aladinbajra/youtube-trending-ai/internal/gateway"
)

type StatsHandler struct {
	gw *gateway.Gateway
}

func NewStatsHandler(gw *gateway.Gateway) *StatsHandler {
	return &StatsHandler{gw: gw}
}

// GetStats handles GET /api/stats — dataset totals for the page headers,
// proxied from the backend or computed over the sample corpus.
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	return c.JSON(h.gw.GetStats(c.Context()))
}
