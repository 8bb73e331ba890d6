package handlers

import (
	"exercise-tracker/app"
	"exercise-tracker/models"

	"github.com/gofiber/fiber/v2"
)

// CreateUser stores a new user and echoes {username, _id}
func CreateUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateUserRequest
		if err := parseBody(c, &req); err != nil {
			return err
		}

		user, err := a.Users.Create(c.UserContext(), req)
		if err != nil {
			return err
		}

		return success(c, fiber.Map{
			"username": user.Username,
			"_id":      user.ID,
		})
	}
}

// ListUsers returns every user as {username, _id}
func ListUsers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := a.Users.List(c.UserContext())
		if err != nil {
			return err
		}
		return success(c, users)
	}
}
