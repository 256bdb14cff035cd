package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	users := app.Group("/api/v1/users")

	users.Post("/register", h.Register)
	users.Post("/login", h.Login)
	users.Post("/refresh", h.Refresh)
	users.Post("/logout", h.RequireAuth(), h.Logout)
	users.Post("/logout-all", h.RequireAuth(), h.LogoutAll)
}
