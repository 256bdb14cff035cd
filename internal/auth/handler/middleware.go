package handler

import (
	"strings"

	"github.com/arbelcharny-source/blog-service/internal/auth/service"
	"github.com/arbelcharny-source/blog-service/internal/response"
	"github.com/arbelcharny-source/blog-service/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

// RequireAuth verifies the bearer access token and stores its claims in the
// request locals. Any failure answers with the same generic 401.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, constant.BearerPrefix) {
			return response.Error(c, fiber.StatusUnauthorized, "invalid or expired token")
		}

		tokenString := strings.TrimPrefix(authHeader, constant.BearerPrefix)

		claims, err := h.tokenService.VerifyAccessToken(tokenString)
		if err != nil {
			return response.Error(c, fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(constant.ClaimsKey, claims)

		return c.Next()
	}
}

// ClaimsFromCtx returns the claims RequireAuth stored, or nil when the
// request never passed the middleware.
func ClaimsFromCtx(c *fiber.Ctx) *service.JWTCustomClaims {
	claims, ok := c.Locals(constant.ClaimsKey).(*service.JWTCustomClaims)
	if !ok {
		return nil
	}

	return claims
}
