package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"tasks-api/interfaces/api/handlers"
	"tasks-api/interfaces/api/middleware"
	"tasks-api/interfaces/api/routes"
	"tasks-api/pkg/di"
	"tasks-api/pkg/logger"
)

func main() {
	container := di.NewContainer()

	if err := container.Initialize(); err != nil {
		panic("failed to initialize container: " + err.Error())
	}

	setupGracefulShutdown(container)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		AppName:      container.GetConfig().App.Name,
	})

	// order matters: request IDs must exist before request logging
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.CorsMiddleware())

	h := handlers.NewHandlers(container.UserService, container.TaskService)
	protected := middleware.Protected(container.TokenManager, container.UserRepository)
	routes.SetupRoutes(app, h, protected)

	port := container.GetConfig().App.Port
	logger.Info("Server starting", "port", port, "env", container.GetConfig().App.Env)

	if err := app.Listen(":" + port); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}

func setupGracefulShutdown(container *di.Container) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("Gracefully shutting down...")

		if err := container.Cleanup(); err != nil {
			logger.Error("Error during cleanup", "error", err)
		}

		os.Exit(0)
	}()
}
