package routes

import (
	"github.com/gofiber/fiber/v2"

	"tasks-api/interfaces/api/handlers"
)

func SetupTaskRoutes(app *fiber.App, h *handlers.Handlers, protected fiber.Handler) {
	tasks := app.Group("/tasks")
	tasks.Use(protected)

	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/", h.TaskHandler.ListTasks)
	// registered before /:id so "stats" is not parsed as a task ID
	tasks.Get("/stats", h.TaskHandler.GetStats)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Put("/:id", h.TaskHandler.UpdateTask)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
}
