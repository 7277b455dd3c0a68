package bootstrap

import (
	"estate-backend/internal/app"
	"estate-backend/internal/config"

	"github.com/gofiber/fiber/v2"
)

// New creates the Fiber app for the serverless entry point (api/ imports
// this package, not internal/).
func New() (*fiber.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return app.CreateApp(cfg)
}
