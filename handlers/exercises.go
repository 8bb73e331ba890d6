package handlers

import (
	"exercise-tracker/app"
	"exercise-tracker/models"

	"github.com/gofiber/fiber/v2"
)

// AddExercise records an exercise for the user in the path
func AddExercise(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateExerciseRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}

		resp, err := a.Exercises.Add(c.UserContext(), c.Params("_id"), req)
		if err != nil {
			return err
		}
		return success(c, resp)
	}
}

// GetLog returns the user's exercise log filtered by from, to and limit
func GetLog(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q models.LogQuery
		if err := c.QueryParser(&q); err != nil {
			return err
		}

		resp, err := a.Exercises.Log(c.UserContext(), c.Params("_id"), q)
		if err != nil {
			return err
		}
		return success(c, resp)
	}
}
