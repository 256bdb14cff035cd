package dto

import (
	"time"

	"github.com/arbelcharny-source/blog-service/internal/blog/domain"
)

type CreatePostInput struct {
	Title              string `json:"title"`
	Content            string `json:"content"`
	ImageAttachmentURL string `json:"imageAttachmentUrl"`
}

type UpdatePostInput struct {
	Content string `json:"content"`
}

type PostOutput struct {
	ID                 string    `json:"id"`
	OwnerID            string    `json:"ownerId"`
	Title              string    `json:"title"`
	Content            string    `json:"content"`
	ImageAttachmentURL string    `json:"imageAttachmentUrl,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

func NewPostOutput(p *domain.Post) *PostOutput {
	return &PostOutput{
		ID:                 p.ID,
		OwnerID:            p.OwnerID,
		Title:              p.Title,
		Content:            p.Content,
		ImageAttachmentURL: p.ImageAttachmentURL,
		CreatedAt:          p.CreatedAt,
	}
}

func NewPostOutputs(posts []domain.Post) []PostOutput {
	out := make([]PostOutput, 0, len(posts))
	for i := range posts {
		out = append(out, *NewPostOutput(&posts[i]))
	}

	return out
}

type PaginatedPosts struct {
	Data       []PostOutput `json:"data"`
	Pagination Pagination   `json:"pagination"`
}
