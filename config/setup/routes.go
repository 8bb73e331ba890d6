package setup

import (
	"exercise-tracker/app"
	"exercise-tracker/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/", handlers.HomePage)
	fiberApp.Get("/health", handlers.Health)

	api := fiberApp.Group("/api")
	api.Post("/users", handlers.CreateUser(application))
	api.Get("/users", handlers.ListUsers(application))
	api.Post("/users/:_id/exercises", handlers.AddExercise(application))
	api.Get("/users/:_id/logs", handlers.GetLog(application))
}
