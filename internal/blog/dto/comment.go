package dto

import (
	"time"

	"github.com/arbelcharny-source/blog-service/internal/blog/domain"
)

type CreateCommentInput struct {
	PostID  string `json:"postId"`
	Content string `json:"content"`
}

type UpdateCommentInput struct {
	Content string `json:"content"`
}

type CommentOutput struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	PostID    string    `json:"postId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewCommentOutput(c *domain.Comment) *CommentOutput {
	return &CommentOutput{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		PostID:    c.PostID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func NewCommentOutputs(comments []domain.Comment) []CommentOutput {
	out := make([]CommentOutput, 0, len(comments))
	for i := range comments {
		out = append(out, *NewCommentOutput(&comments[i]))
	}

	return out
}

type PaginatedComments struct {
	Data       []CommentOutput `json:"data"`
	Pagination Pagination      `json:"pagination"`
}
