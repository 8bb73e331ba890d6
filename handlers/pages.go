package handlers

import (
	"exercise-tracker/templates/pages"

	"github.com/gofiber/fiber/v2"
)

func HomePage(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/html; charset=utf-8")
	return pages.Index().Render(c.Context(), c.Response().BodyWriter())
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
