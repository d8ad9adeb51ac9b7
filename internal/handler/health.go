package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	"github.com/aladinbajra/youtube-trending-ai/internal/gateway"
)

type HealthHandler struct {
	gw      *gateway.Gateway
	rdb     *redis.Client
	client  *http.Client
	startAt time.Time
}

func NewHealthHandler(gw *gateway.Gateway, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{
		gw:      gw,
		rdb:     rdb,
		client:  http.DefaultClient,
		startAt: time.Now(),
	}
}

// Live handles GET /health/live — liveness probe.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready — readiness probe with dependency checks.
// Sample mode has no upstream dependency, so a sample-mode instance is ready
// as long as the process is up.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	checks := make(fiber.Map)
	overallStatus := "healthy"

	checks["backend"] = h.checkBackend(ctx)
	if backendCheck, ok := checks["backend"].(fiber.Map); ok {
		if status := backendCheck["status"]; status != "up" && status != "sample" {
			overallStatus = "degraded"
		}
	}

	checks["redis"] = checkRedis(ctx, h.rdb)

	resp := fiber.Map{
		"status":         overallStatus,
		"checks":         checks,
		"uptime_seconds": int(time.Since(h.startAt).Seconds()),
		"sample_data":    h.gw.UsingSampleData(),
		"version":        "1.0.0",
	}

	status := fiber.StatusOK
	if overallStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}

func (h *HealthHandler) checkBackend(ctx context.Context) fiber.Map {
	if h.gw.UsingSampleData() {
		return fiber.Map{"status": "sample"}
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.gw.BackendURL()+"/health", nil)
	if err != nil {
		return fiber.Map{"status": "down", "error": "bad backend URL"}
	}
	resp, err := h.client.Do(req)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		return fiber.Map{"status": "down", "latency_ms": latency, "error": "connection failed"}
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fiber.Map{"status": "down", "latency_ms": latency, "error": "unhealthy status"}
	}
	return fiber.Map{"status": "up", "latency_ms": latency}
}

func checkRedis(ctx context.Context, rdb *redis.Client) fiber.Map {
	if rdb == nil {
		return fiber.Map{"status": "disabled"}
	}

	start := time.Now()
	err := rdb.Ping(ctx).Err()
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return fiber.Map{"status": "down", "latency_ms": latency, "error": "connection failed"}
	}
	return fiber.Map{"status": "up", "latency_ms": latency}
}
