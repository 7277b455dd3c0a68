package health

import (
	"github.com/gofiber/fiber/v2"
)

// ServiceName identifies this backend in health responses.
const ServiceName = "real-estate-backend"

// Handlers serves the unauthenticated status endpoints.
type Handlers struct{}

// Health handles GET /health.
func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": ServiceName})
}

// Info handles GET / with a small service descriptor.
func (h *Handlers) Info(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":      "Real Estate Backend",
		"status":    "ok",
		"endpoints": []string{"/health", "/listings", "/listings/:id", "/listings/summary"},
	})
}
