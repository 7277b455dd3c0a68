package response

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the flat error shape the browser client expects. No
// structured error codes reach the UI; it only looks at the status.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error sends {"error": message} with the given status.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorBody{Error: message})
}

// NotFound sends the 404 body used by every absent-resource lookup.
func NotFound(c *fiber.Ctx) error {
	return Error(c, fiber.StatusNotFound, "Not found")
}
