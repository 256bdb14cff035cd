package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/arbelcharny-source/blog-service/internal/blog/domain"
	"github.com/arbelcharny-source/blog-service/internal/blog/dto"
	"github.com/arbelcharny-source/blog-service/internal/blog/service"
	apperror "github.com/arbelcharny-source/blog-service/internal/errors"
	"github.com/arbelcharny-source/blog-service/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentService(t *testing.T) (*mocks.MockCommentRepository, *mocks.MockPostRepository, *mocks.MockUserDirectory, *service.CommentService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockCommentRepository(ctrl)
	posts := mocks.NewMockPostRepository(ctrl)
	users := mocks.NewMockUserDirectory(ctrl)

	return repo, posts, users, service.NewCommentService(repo, posts, users)
}

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()
	input := dto.CreateCommentInput{PostID: "post-1", Content: "nice post"}

	t.Run("success", func(t *testing.T) {
		repo, posts, users, svc := newCommentService(t)

		users.EXPECT().UserExists(ctx, "owner-1").Return(true, nil)
		posts.EXPECT().GetByID(ctx, "post-1").Return(&domain.Post{ID: "post-1"}, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, comment *domain.Comment) error {
				assert.NotEmpty(t, comment.ID)
				assert.Equal(t, "owner-1", comment.OwnerID)
				assert.Equal(t, "post-1", comment.PostID)
				return nil
			})

		out, err := svc.Create(ctx, "owner-1", input)
		require.NoError(t, err)
		assert.Equal(t, "nice post", out.Content)
	})

	t.Run("unknown owner", func(t *testing.T) {
		_, _, users, svc := newCommentService(t)

		users.EXPECT().UserExists(ctx, "ghost").Return(false, nil)

		_, err := svc.Create(ctx, "ghost", input)
		assert.ErrorIs(t, err, apperror.ErrUserNotFound)
	})

	t.Run("unknown post", func(t *testing.T) {
		_, posts, users, svc := newCommentService(t)

		users.EXPECT().UserExists(ctx, "owner-1").Return(true, nil)
		posts.EXPECT().GetByID(ctx, "post-1").Return(nil, nil)

		_, err := svc.Create(ctx, "owner-1", input)
		assert.ErrorIs(t, err, apperror.ErrPostNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		repo, posts, users, svc := newCommentService(t)

		users.EXPECT().UserExists(ctx, "owner-1").Return(true, nil)
		posts.EXPECT().GetByID(ctx, "post-1").Return(&domain.Post{ID: "post-1"}, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(fmt.Errorf("db error"))

		_, err := svc.Create(ctx, "owner-1", input)
		assert.Error(t, err)
	})
}

func TestCommentService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, _, _, svc := newCommentService(t)

		repo.EXPECT().GetByID(ctx, "comment-1").
			Return(&domain.Comment{ID: "comment-1", Content: "nice post"}, nil)

		out, err := svc.GetByID(ctx, "comment-1")
		require.NoError(t, err)
		assert.Equal(t, "nice post", out.Content)
	})

	t.Run("not found", func(t *testing.T) {
		repo, _, _, svc := newCommentService(t)

		repo.EXPECT().GetByID(ctx, "missing").Return(nil, nil)

		_, err := svc.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, apperror.ErrCommentNotFound)
	})
}

func TestCommentService_ListPaginated(t *testing.T) {
	ctx := context.Background()

	repo, _, _, svc := newCommentService(t)

	repo.EXPECT().List(ctx, 0, 10).Return([]domain.Comment{{ID: "comment-1"}}, nil)
	repo.EXPECT().Count(ctx).Return(1, nil)

	out, err := svc.ListPaginated(ctx, dto.PageParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, 1, out.Pagination.TotalPages)
}

func TestCommentService_ListByPost(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, posts, _, svc := newCommentService(t)

		posts.EXPECT().GetByID(ctx, "post-1").Return(&domain.Post{ID: "post-1"}, nil)
		repo.EXPECT().ListByPost(ctx, "post-1").
			Return([]domain.Comment{{ID: "comment-1", PostID: "post-1"}}, nil)

		out, err := svc.ListByPost(ctx, "post-1")
		require.NoError(t, err)
		require.Len(t, out, 1)
	})

	t.Run("unknown post", func(t *testing.T) {
		_, posts, _, svc := newCommentService(t)

		posts.EXPECT().GetByID(ctx, "missing").Return(nil, nil)

		_, err := svc.ListByPost(ctx, "missing")
		assert.ErrorIs(t, err, apperror.ErrPostNotFound)
	})
}

func TestCommentService_UpdateContent(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, _, _, svc := newCommentService(t)

		repo.EXPECT().UpdateContent(ctx, "comment-1", "edited").
			Return(&domain.Comment{ID: "comment-1", Content: "edited"}, nil)

		out, err := svc.UpdateContent(ctx, "comment-1", "edited")
		require.NoError(t, err)
		assert.Equal(t, "edited", out.Content)
	})

	t.Run("not found", func(t *testing.T) {
		repo, _, _, svc := newCommentService(t)

		repo.EXPECT().UpdateContent(ctx, "missing", "edited").Return(nil, nil)

		_, err := svc.UpdateContent(ctx, "missing", "edited")
		assert.ErrorIs(t, err, apperror.ErrCommentNotFound)
	})
}

func TestCommentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, _, _, svc := newCommentService(t)

		repo.EXPECT().Delete(ctx, "comment-1").Return(true, nil)

		assert.NoError(t, svc.Delete(ctx, "comment-1"))
	})

	t.Run("not found", func(t *testing.T) {
		repo, _, _, svc := newCommentService(t)

		repo.EXPECT().Delete(ctx, "missing").Return(false, nil)

		assert.ErrorIs(t, svc.Delete(ctx, "missing"), apperror.ErrCommentNotFound)
	})
}
