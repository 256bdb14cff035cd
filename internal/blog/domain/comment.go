package domain

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        string
	OwnerID   string
	PostID    string
	Content   string
	CreatedAt time.Time
}

func NewComment(ownerID, postID, content string) *Comment {
	return &Comment{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		PostID:    postID,
		Content:   content,
		CreatedAt: time.Now(),
	}
}
