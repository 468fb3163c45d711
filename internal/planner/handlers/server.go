package handlers

import (
	"time"

	"studio-planner/internal/common/config"
	"studio-planner/internal/common/middleware"
	"studio-planner/internal/planner/app"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ============================================================
// Studio Planner Server
// ============================================================

// NewServer builds the fiber app with every planner route mounted.
func NewServer(cfg *config.Config, p *app.Planner) *fiber.App {
	server := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Studio Planner",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	server.Use(recover.New())
	server.Use(middleware.CORS(cfg.CORSOrigins...))
	server.Use(middleware.Logger(p.Logger))

	// ============================================================
	// Health Check Routes
	// ============================================================

	health := NewHealthHandler(p.KV)
	server.Get("/health/live", health.LivenessProbe)
	server.Get("/health/ready", health.ReadinessProbe)
	server.Get("/health/startup", health.StartupProbe)

	server.Get("/docs/openapi.yaml", OpenAPIDocument)
	server.Get("/docs", DocsPage)

	if cfg.Metrics {
		server.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	// ============================================================
	// API Routes
	// ============================================================

	api := server.Group("/api/v1")
	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Studio Planner v1",
			"status":  "ok",
		})
	})
	NewPlannerHandler(p).Register(api)

	return server
}
