package middleware

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Logger Middleware
// ============================================================

// Logger writes one line per request through the service logger.
func Logger(logger *log.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		fields := []any{
			"status", status,
			"method", c.Method(),
			"path", c.Path(),
			"latency", time.Since(start).Round(time.Microsecond),
		}
		switch {
		case err != nil:
			logger.Error("[HTTP] request failed", append(fields, "err", err)...)
		case status >= 500:
			logger.Warn("[HTTP] request", fields...)
		default:
			logger.Debug("[HTTP] request", fields...)
		}
		return err
	}
}
