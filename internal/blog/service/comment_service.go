package service

import (
	"context"

	"github.com/arbelcharny-source/blog-service/internal/blog/domain"
	"github.com/arbelcharny-source/blog-service/internal/blog/dto"
	apperror "github.com/arbelcharny-source/blog-service/internal/errors"
)

type CommentService struct {
	repo  domain.CommentRepository
	posts domain.PostRepository
	users domain.UserDirectory
}

func NewCommentService(repo domain.CommentRepository, posts domain.PostRepository, users domain.UserDirectory) *CommentService {
	return &CommentService{repo: repo, posts: posts, users: users}
}

func (s *CommentService) Create(ctx context.Context, ownerID string, input dto.CreateCommentInput) (*dto.CommentOutput, error) {
	exists, err := s.users.UserExists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.ErrUserNotFound
	}

	post, err := s.posts.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.ErrPostNotFound
	}

	comment := domain.NewComment(ownerID, input.PostID, input.Content)

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return dto.NewCommentOutput(comment), nil
}

func (s *CommentService) GetByID(ctx context.Context, id string) (*dto.CommentOutput, error) {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperror.ErrCommentNotFound
	}

	return dto.NewCommentOutput(comment), nil
}

func (s *CommentService) List(ctx context.Context) ([]dto.CommentOutput, error) {
	comments, err := s.repo.List(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	return dto.NewCommentOutputs(comments), nil
}

func (s *CommentService) ListPaginated(ctx context.Context, params dto.PageParams) (*dto.PaginatedComments, error) {
	params = params.Normalize()

	comments, err := s.repo.List(ctx, params.Offset(), params.Limit)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.PaginatedComments{
		Data:       dto.NewCommentOutputs(comments),
		Pagination: dto.NewPagination(params, total),
	}, nil
}

func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]dto.CommentOutput, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.ErrPostNotFound
	}

	comments, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return dto.NewCommentOutputs(comments), nil
}

func (s *CommentService) UpdateContent(ctx context.Context, id, content string) (*dto.CommentOutput, error) {
	comment, err := s.repo.UpdateContent(ctx, id, content)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperror.ErrCommentNotFound
	}

	return dto.NewCommentOutput(comment), nil
}

func (s *CommentService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.ErrCommentNotFound
	}

	return nil
}
