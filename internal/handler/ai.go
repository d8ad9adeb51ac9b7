package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/aladinbajra/youtube-trending-ai/internal/gateway"
	"github.com/aladinbajra/youtube-trending-ai/internal/middleware"
)

// AIHandler forwards the AI-tool endpoints (insights, title generation,
// score explanation, topic detection) to the backend untouched. The payloads
// are opaque here; when the backend cannot be reached the panel gets an
// inline unavailable message instead of an error status.
type AIHandler struct {
	gw *gateway.Gateway
}

func NewAIHandler(gw *gateway.Gateway) *AIHandler {
	return &AIHandler{gw: gw}
}

// Proxy handles every /api/ai/* route.
func (h *AIHandler) Proxy(c fiber.Ctx) error {
	status, payload, err := h.gw.ProxyAI(
		c.Context(),
		c.Method(),
		c.Path(),
		string(c.Request().URI().QueryString()),
		c.Body(),
	)
	if err != nil {
		middleware.Logger.Warn().Err(err).Str("path", c.Path()).Msg("ai proxy unavailable")
		return c.JSON(fiber.Map{
			"available": false,
			"message":   "AI insights are currently unavailable",
		})
	}

	c.Set("Content-Type", "application/json")
	return c.Status(status).Send(payload)
}
