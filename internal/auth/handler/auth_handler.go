package handler

import (
	"errors"
	"net/mail"

	"github.com/arbelcharny-source/blog-service/internal/auth/dto"
	"github.com/arbelcharny-source/blog-service/internal/auth/service"
	autherror "github.com/arbelcharny-source/blog-service/internal/errors"
	"github.com/arbelcharny-source/blog-service/internal/logging"
	"github.com/arbelcharny-source/blog-service/internal/response"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService  *service.UserService
	tokenService service.TokenGenerator
}

func NewAuthHandler(userService *service.UserService, tokenService service.TokenGenerator) *AuthHandler {
	return &AuthHandler{userService: userService, tokenService: tokenService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid input")
	}

	if input.Username == "" || input.Email == "" || input.FullName == "" || input.Password == "" {
		return response.Error(c, fiber.StatusBadRequest, "username, email, fullName and password are required")
	}

	if _, err := mail.ParseAddress(input.Email); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "Invalid email format")
	}

	auth, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		return h.writeError(c, err)
	}

	return response.Success(c, fiber.StatusCreated, auth)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid input")
	}

	auth, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		return h.writeError(c, err)
	}

	return response.Success(c, fiber.StatusOK, auth)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid input")
	}

	tokens, err := h.userService.Refresh(c.UserContext(), input.RefreshToken)
	if err != nil {
		return h.writeError(c, err)
	}

	return response.Success(c, fiber.StatusOK, tokens)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims := ClaimsFromCtx(c)
	if claims == nil {
		return response.Error(c, fiber.StatusUnauthorized, autherror.ErrInvalidToken.Error())
	}

	var input dto.LogoutInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := h.userService.Logout(c.UserContext(), claims.UserID, input.RefreshToken); err != nil {
		return h.writeError(c, err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{"message": "logged out"})
}

func (h *AuthHandler) LogoutAll(c *fiber.Ctx) error {
	claims := ClaimsFromCtx(c)
	if claims == nil {
		return response.Error(c, fiber.StatusUnauthorized, autherror.ErrInvalidToken.Error())
	}

	if err := h.userService.LogoutAll(c.UserContext(), claims.UserID); err != nil {
		return h.writeError(c, err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{"message": "logged out from all sessions"})
}

func (h *AuthHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, autherror.ErrUsernameTaken), errors.Is(err, autherror.ErrEmailTaken):
		return response.Error(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, autherror.ErrInvalidCredentials), errors.Is(err, autherror.ErrInvalidToken):
		return response.Error(c, fiber.StatusUnauthorized, err.Error())
	default:
		logging.FromContext(c.UserContext()).Error("auth operation failed", "error", err)
		return response.Error(c, fiber.StatusInternalServerError, "internal server error")
	}
}
