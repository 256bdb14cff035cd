package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/arbelcharny-source/blog-service/internal/blog/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the slice of pgxpool.Pool the repositories need. pgxmock
// satisfies it too, which is what the tests run against.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PostRepository struct {
	db PgxIface
}

func NewPostRepository(db PgxIface) *PostRepository {
	return &PostRepository{db: db}
}

const postColumns = `id, owner_id, title, content, COALESCE(image_attachment_url, ''), created_at`

func scanPost(row pgx.Row) (*domain.Post, error) {
	var post domain.Post
	err := row.Scan(&post.ID, &post.OwnerID, &post.Title, &post.Content,
		&post.ImageAttachmentURL, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan post: %w", err)
	}

	return &post, nil
}

func collectPosts(rows pgx.Rows) ([]domain.Post, error) {
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		err := rows.Scan(&post.ID, &post.OwnerID, &post.Title, &post.Content,
			&post.ImageAttachmentURL, &post.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	imageURL := any(post.ImageAttachmentURL)
	if post.ImageAttachmentURL == "" {
		imageURL = nil
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO posts (id, owner_id, title, content, image_attachment_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, post.ID, post.OwnerID, post.Title, post.Content, imageURL, post.CreatedAt)

	return err
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1 LIMIT 1`

	return scanPost(r.db.QueryRow(ctx, query, id))
}

func (r *PostRepository) List(ctx context.Context, offset, limit int) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`

	var (
		rows pgx.Rows
		err  error
	)

	if limit > 0 {
		rows, err = r.db.Query(ctx, query+` OFFSET $1 LIMIT $2`, offset, limit)
	} else {
		rows, err = r.db.Query(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return collectPosts(rows)
}

func (r *PostRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return total, nil
}

func (r *PostRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by owner: %w", err)
	}

	return collectPosts(rows)
}

func (r *PostRepository) UpdateContent(ctx context.Context, id, content string) (*domain.Post, error) {
	query := `
		UPDATE posts
		SET content = $2
		WHERE id = $1
		RETURNING ` + postColumns

	return scanPost(r.db.QueryRow(ctx, query, id, content))
}

func (r *PostRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
