package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/route-suggestion-service/internal/metrics"
)

// Metrics - middleware, пишущий длительность и количество запросов в Prometheus.
// Метка route берётся из шаблона маршрута, а не из фактического пути.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		route := "unmatched"
		if r := c.Route(); r != nil && r.Path != "" && status != fiber.StatusNotFound {
			route = r.Path
		}

		metrics.RecordHTTPRequest(c.Method(), route, status, time.Since(start))
		return err
	}
}
