package handler

import (
	"errors"

	authhandler "github.com/arbelcharny-source/blog-service/internal/auth/handler"
	"github.com/arbelcharny-source/blog-service/internal/blog/dto"
	"github.com/arbelcharny-source/blog-service/internal/blog/service"
	apperror "github.com/arbelcharny-source/blog-service/internal/errors"
	"github.com/arbelcharny-source/blog-service/internal/logging"
	"github.com/arbelcharny-source/blog-service/internal/response"
	"github.com/gofiber/fiber/v2"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	claims := authhandler.ClaimsFromCtx(c)
	if claims == nil {
		return response.Error(c, fiber.StatusUnauthorized, "invalid or expired token")
	}

	var input dto.CreatePostInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid input")
	}

	if input.Title == "" || input.Content == "" {
		return response.Error(c, fiber.StatusBadRequest, "title and content are required")
	}

	post, err := h.postService.Create(c.UserContext(), claims.UserID, input)
	if err != nil {
		return writeError(c, err)
	}

	return response.Success(c, fiber.StatusCreated, post)
}

func (h *PostHandler) List(c *fiber.Ctx) error {
	// Presence of either query param switches to the paginated envelope.
	page := c.QueryInt("page", 0)
	limit := c.QueryInt("limit", 0)

	if page > 0 || limit > 0 {
		result, err := h.postService.ListPaginated(c.UserContext(), dto.PageParams{Page: page, Limit: limit})
		if err != nil {
			return writeError(c, err)
		}

		return response.Success(c, fiber.StatusOK, result)
	}

	posts, err := h.postService.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	return response.Success(c, fiber.StatusOK, posts)
}

func (h *PostHandler) GetByID(c *fiber.Ctx) error {
	post, err := h.postService.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return response.Success(c, fiber.StatusOK, post)
}

func (h *PostHandler) ListByOwner(c *fiber.Ctx) error {
	posts, err := h.postService.ListByOwner(c.UserContext(), c.Params("ownerId"))
	if err != nil {
		return writeError(c, err)
	}

	return response.Success(c, fiber.StatusOK, posts)
}

func (h *PostHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdatePostInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid input")
	}

	if input.Content == "" {
		return response.Error(c, fiber.StatusBadRequest, "content is required")
	}

	post, err := h.postService.UpdateContent(c.UserContext(), c.Params("id"), input.Content)
	if err != nil {
		return writeError(c, err)
	}

	return response.Success(c, fiber.StatusOK, post)
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	if err := h.postService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{"message": "post deleted"})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperror.ErrUserNotFound),
		errors.Is(err, apperror.ErrPostNotFound),
		errors.Is(err, apperror.ErrCommentNotFound):
		return response.Error(c, fiber.StatusNotFound, err.Error())
	default:
		logging.FromContext(c.UserContext()).Error("blog operation failed", "error", err)
		return response.Error(c, fiber.StatusInternalServerError, "internal server error")
	}
}
