package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/arbelcharny-source/blog-service/internal/blog/domain"
	repo "github.com/arbelcharny-source/blog-service/internal/blog/repository/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postColumns = []string{"id", "owner_id", "title", "content", "coalesce", "created_at"}

func newMockPostRepo(t *testing.T) (pgxmock.PgxPoolIface, *repo.PostRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, repo.NewPostRepository(mock)
}

func TestPostCreate(t *testing.T) {
	mock, r := newMockPostRepo(t)
	ctx := context.Background()

	t.Run("with attachment", func(t *testing.T) {
		post := domain.NewPost("owner-1", "First Post", "hello world", "https://cdn.example.com/cat.png")

		mock.ExpectExec("INSERT INTO posts").
			WithArgs(post.ID, post.OwnerID, post.Title, post.Content,
				post.ImageAttachmentURL, post.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Create(ctx, post)
		assert.NoError(t, err)
	})

	t.Run("without attachment stores NULL", func(t *testing.T) {
		post := domain.NewPost("owner-1", "First Post", "hello world", "")

		mock.ExpectExec("INSERT INTO posts").
			WithArgs(post.ID, post.OwnerID, post.Title, post.Content,
				nil, post.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Create(ctx, post)
		assert.NoError(t, err)
	})
}

func TestPostGetByID(t *testing.T) {
	mock, r := newMockPostRepo(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, owner_id, title").
			WithArgs("post-1").
			WillReturnRows(pgxmock.NewRows(postColumns).
				AddRow("post-1", "owner-1", "First Post", "hello world", "", time.Now()))

		post, err := r.GetByID(ctx, "post-1")
		require.NoError(t, err)
		require.NotNil(t, post)
		assert.Equal(t, "First Post", post.Title)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, owner_id, title").
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		post, err := r.GetByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, post)
	})
}

func TestPostList(t *testing.T) {
	mock, r := newMockPostRepo(t)
	ctx := context.Background()

	t.Run("unpaginated", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, owner_id, title").
			WillReturnRows(pgxmock.NewRows(postColumns).
				AddRow("post-2", "owner-1", "Second", "newer", "", time.Now()).
				AddRow("post-1", "owner-1", "First", "older", "", time.Now()))

		posts, err := r.List(ctx, 0, 0)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "post-2", posts[0].ID)
	})

	t.Run("paginated", func(t *testing.T) {
		mock.ExpectQuery("OFFSET \\$1 LIMIT \\$2").
			WithArgs(10, 10).
			WillReturnRows(pgxmock.NewRows(postColumns).
				AddRow("post-11", "owner-2", "Eleventh", "content", "", time.Now()))

		posts, err := r.List(ctx, 10, 10)
		require.NoError(t, err)
		require.Len(t, posts, 1)
	})

	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, owner_id, title").
			WillReturnRows(pgxmock.NewRows(postColumns))

		posts, err := r.List(ctx, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, owner_id, title").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.List(ctx, 0, 0)
		assert.Error(t, err)
	})
}

func TestPostCount(t *testing.T) {
	mock, r := newMockPostRepo(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM posts").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	total, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, total)
}

func TestPostListByOwner(t *testing.T) {
	mock, r := newMockPostRepo(t)
	ctx := context.Background()

	mock.ExpectQuery("WHERE owner_id = \\$1").
		WithArgs("owner-1").
		WillReturnRows(pgxmock.NewRows(postColumns).
			AddRow("post-1", "owner-1", "First", "content", "", time.Now()))

	posts, err := r.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "owner-1", posts[0].OwnerID)
}

func TestPostUpdateContent(t *testing.T) {
	mock, r := newMockPostRepo(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("UPDATE posts").
			WithArgs("post-1", "edited").
			WillReturnRows(pgxmock.NewRows(postColumns).
				AddRow("post-1", "owner-1", "First", "edited", "", time.Now()))

		post, err := r.UpdateContent(ctx, "post-1", "edited")
		require.NoError(t, err)
		require.NotNil(t, post)
		assert.Equal(t, "edited", post.Content)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("UPDATE posts").
			WithArgs("missing", "edited").
			WillReturnError(pgx.ErrNoRows)

		post, err := r.UpdateContent(ctx, "missing", "edited")
		require.NoError(t, err)
		assert.Nil(t, post)
	})
}

func TestPostDelete(t *testing.T) {
	mock, r := newMockPostRepo(t)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM posts").
			WithArgs("post-1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		deleted, err := r.Delete(ctx, "post-1")
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM posts").
			WithArgs("missing").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		deleted, err := r.Delete(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
