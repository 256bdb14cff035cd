package handler

import (
	authhandler "github.com/arbelcharny-source/blog-service/internal/auth/handler"
	"github.com/arbelcharny-source/blog-service/internal/blog/dto"
	"github.com/arbelcharny-source/blog-service/internal/blog/service"
	"github.com/arbelcharny-source/blog-service/internal/response"
	"github.com/gofiber/fiber/v2"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	claims := authhandler.ClaimsFromCtx(c)
	if claims == nil {
		return response.Error(c, fiber.StatusUnauthorized, "invalid or expired token")
	}

	var input dto.CreateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid input")
	}

	if input.PostID == "" || input.Content == "" {
		return response.Error(c, fiber.StatusBadRequest, "postId and content are required")
	}

	comment, err := h.commentService.Create(c.UserContext(), claims.UserID, input)
	if err != nil {
		return writeError(c, err)
	}

	return response.Success(c, fiber.StatusCreated, comment)
}

func (h *CommentHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	limit := c.QueryInt("limit", 0)

	if page > 0 || limit > 0 {
		result, err := h.commentService.ListPaginated(c.UserContext(), dto.PageParams{Page: page, Limit: limit})
		if err != nil {
			return writeError(c, err)
		}

		return response.Success(c, fiber.StatusOK, result)
	}

	comments, err := h.commentService.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	return response.Success(c, fiber.StatusOK, comments)
}

func (h *CommentHandler) GetByID(c *fiber.Ctx) error {
	comment, err := h.commentService.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return response.Success(c, fiber.StatusOK, comment)
}

func (h *CommentHandler) ListByPost(c *fiber.Ctx) error {
	comments, err := h.commentService.ListByPost(c.UserContext(), c.Params("postId"))
	if err != nil {
		return writeError(c, err)
	}

	return response.Success(c, fiber.StatusOK, comments)
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateCommentInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, fiber.StatusBadRequest, "invalid input")
	}

	if input.Content == "" {
		return response.Error(c, fiber.StatusBadRequest, "content is required")
	}

	comment, err := h.commentService.UpdateContent(c.UserContext(), c.Params("id"), input.Content)
	if err != nil {
		return writeError(c, err)
	}

	return response.Success(c, fiber.StatusOK, comment)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	if err := h.commentService.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{"message": "comment deleted"})
}
