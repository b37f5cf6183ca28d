package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/BubeleRasmeni/seabirds-dashboard/internal/observability"
)

// Metrics counts requests by method, route pattern and status. The route
// pattern is used instead of the raw path to keep label cardinality bounded.
func Metrics(m *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		path := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}

		m.HTTPRequests.WithLabelValues(
			c.Method(),
			path,
			strconv.Itoa(status),
		).Inc()

		return err
	}
}
