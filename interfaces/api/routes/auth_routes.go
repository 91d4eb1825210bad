package routes

import (
	"github.com/gofiber/fiber/v2"

	"tasks-api/interfaces/api/handlers"
)

func SetupAuthRoutes(app *fiber.App, h *handlers.Handlers, protected fiber.Handler) {
	auth := app.Group("/auth")

	auth.Post("/register", h.UserHandler.Register)
	auth.Post("/login", h.UserHandler.Login)
	auth.Get("/me", protected, h.UserHandler.GetMe)
}
