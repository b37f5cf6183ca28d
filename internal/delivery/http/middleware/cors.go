package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS configures Cross-Origin Resource Sharing. An empty origins value
// keeps the fiber default of allowing all origins.
func CORS(allowOrigins string) fiber.Handler {
	cfg := cors.Config{
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Content-Type,Accept,Accept-Language",
	}
	if allowOrigins != "" {
		cfg.AllowOrigins = allowOrigins
	}
	return cors.New(cfg)
}
