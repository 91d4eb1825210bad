package routes

import (
	"github.com/gofiber/fiber/v2"

	"tasks-api/interfaces/api/handlers"
)

// SetupRoutes registers the API surface. The protected handler is
// built by the caller so route wiring stays free of token/store deps.
func SetupRoutes(app *fiber.App, h *handlers.Handlers, protected fiber.Handler) {
	SetupHealthRoutes(app)
	SetupAuthRoutes(app, h, protected)
	SetupTaskRoutes(app, h, protected)
}
