package service

import (
	"context"

	"github.com/arbelcharny-source/blog-service/internal/blog/domain"
	"github.com/arbelcharny-source/blog-service/internal/blog/dto"
	apperror "github.com/arbelcharny-source/blog-service/internal/errors"
)

type PostService struct {
	repo  domain.PostRepository
	users domain.UserDirectory
}

func NewPostService(repo domain.PostRepository, users domain.UserDirectory) *PostService {
	return &PostService{repo: repo, users: users}
}

func (s *PostService) Create(ctx context.Context, ownerID string, input dto.CreatePostInput) (*dto.PostOutput, error) {
	exists, err := s.users.UserExists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.ErrUserNotFound
	}

	post := domain.NewPost(ownerID, input.Title, input.Content, input.ImageAttachmentURL)

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	return dto.NewPostOutput(post), nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (*dto.PostOutput, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.ErrPostNotFound
	}

	return dto.NewPostOutput(post), nil
}

func (s *PostService) List(ctx context.Context) ([]dto.PostOutput, error) {
	posts, err := s.repo.List(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	return dto.NewPostOutputs(posts), nil
}

func (s *PostService) ListPaginated(ctx context.Context, params dto.PageParams) (*dto.PaginatedPosts, error) {
	params = params.Normalize()

	posts, err := s.repo.List(ctx, params.Offset(), params.Limit)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedPosts{
		Data:       dto.NewPostOutputs(posts),
		Pagination: dto.NewPagination(params, total),
	}, nil
}

func (s *PostService) ListByOwner(ctx context.Context, ownerID string) ([]dto.PostOutput, error) {
	exists, err := s.users.UserExists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.ErrUserNotFound
	}

	posts, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return dto.NewPostOutputs(posts), nil
}

func (s *PostService) UpdateContent(ctx context.Context, id, content string) (*dto.PostOutput, error) {
	post, err := s.repo.UpdateContent(ctx, id, content)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.ErrPostNotFound
	}

	return dto.NewPostOutput(post), nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.ErrPostNotFound
	}

	return nil
}

// Exists lets the comment service validate the post a comment targets.
func (s *PostService) Exists(ctx context.Context, id string) (bool, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	return post != nil, nil
}
