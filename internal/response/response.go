package response

import (
	"github.com/gofiber/fiber/v2"
)

// Every endpoint answers with the same envelope: {"success":true,"data":...}
// or {"success":false,"error":"..."}. Internal detail never leaks into the
// error string; handlers pick a safe message before calling Error.

func Success(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
