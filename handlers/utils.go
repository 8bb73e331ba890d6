package handlers

import (
	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// parseBody decodes a JSON or form body into out. An empty body leaves
// out untouched so the missing fields are reported by validation.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(out)
}
