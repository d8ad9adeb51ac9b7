package main

import (
	"log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"

	"github.com/aladinbajra/youtube-trending-ai/internal/config"
	"github.com/aladinbajra/youtube-trending-ai/internal/gateway"
	"github.com/aladinbajra/youtube-trending-ai/internal/handler"
	"github.com/aladinbajra/youtube-trending-ai/internal/middleware"
	"github.com/aladinbajra/youtube-trending-ai/internal/router"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "tubevirality-api")
	handler.InitMetrics()
	gateway.InitMetrics()

	cache := gateway.NewCache(cfg.RedisURL)
	defer cache.Close()

	gw := gateway.New(gateway.Config{
		BackendURL:    cfg.BackendURL,
		UseSampleData: cfg.UseSampleData,
		SamplePath:    cfg.SampleData,
	}, cache, middleware.Logger)

	app := fiber.New(fiber.Config{
		AppName:      "Tube Virality API",
		ServerHeader: "TubeVirality",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	h := &router.Handlers{
		Video:  handler.NewVideoHandler(gw),
		Charts: handler.NewChartsHandler(gw),
		Stats:  handler.NewStatsHandler(gw),
		AI:     handler.NewAIHandler(gw),
		Health: handler.NewHealthHandler(gw, cache.Client()),
	}
	router.Setup(app, h, cfg.CORSOrigins)

	mode := "live"
	if gw.UsingSampleData() {
		mode = "sample"
	}
	log.Printf("Tube Virality API starting on :%s (env=%s, data=%s)", cfg.Port, cfg.Environment, mode)
	log.Fatal(app.Listen(":" + cfg.Port))
}
