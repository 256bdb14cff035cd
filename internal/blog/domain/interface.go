package domain

//go:generate mockgen -destination=../../mocks/mock_post_repository.go -package=mocks github.com/arbelcharny-source/blog-service/internal/blog/domain PostRepository
//go:generate mockgen -destination=../../mocks/mock_comment_repository.go -package=mocks github.com/arbelcharny-source/blog-service/internal/blog/domain CommentRepository
//go:generate mockgen -destination=../../mocks/mock_user_directory.go -package=mocks github.com/arbelcharny-source/blog-service/internal/blog/domain UserDirectory

import "context"

// UserDirectory is the narrow view of the auth repository the blog services
// need to validate owners.
type UserDirectory interface {
	UserExists(ctx context.Context, id string) (bool, error)
}

// PostRepository lookups return (nil, nil) when no row matches. List with a
// non-positive limit returns everything.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	List(ctx context.Context, offset, limit int) ([]Post, error)
	Count(ctx context.Context) (int, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Post, error)
	UpdateContent(ctx context.Context, id, content string) (*Post, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, id string) (*Comment, error)
	List(ctx context.Context, offset, limit int) ([]Comment, error)
	Count(ctx context.Context) (int, error)
	ListByPost(ctx context.Context, postID string) ([]Comment, error)
	UpdateContent(ctx context.Context, id, content string) (*Comment, error)
	Delete(ctx context.Context, id string) (bool, error)
}
