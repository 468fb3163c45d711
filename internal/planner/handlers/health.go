package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"studio-planner/internal/planner/repository"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Health Check Handlers
// ============================================================

type HealthHandler struct {
	kv      repository.Storage
	started time.Time
}

func NewHealthHandler(kv repository.Storage) *HealthHandler {
	return &HealthHandler{kv: kv, started: time.Now()}
}

// LivenessProbe reports that the process is serving.
func (h *HealthHandler) LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// ReadinessProbe checks that the storage backend answers.
func (h *HealthHandler) ReadinessProbe(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	if _, err := h.kv.Get(ctx, "health-probe"); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"status": "ready",
	})
}

func (h *HealthHandler) StartupProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "started",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}
