package domain

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID                 string
	OwnerID            string
	Title              string
	Content            string
	ImageAttachmentURL string
	CreatedAt          time.Time
}

func NewPost(ownerID, title, content, imageAttachmentURL string) *Post {
	return &Post{
		ID:                 uuid.New().String(),
		OwnerID:            ownerID,
		Title:              title,
		Content:            content,
		ImageAttachmentURL: imageAttachmentURL,
		CreatedAt:          time.Now(),
	}
}
