package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/arbelcharny-source/blog-service/internal/blog/domain"
	"github.com/jackc/pgx/v5"
)

type CommentRepository struct {
	db PgxIface
}

func NewCommentRepository(db PgxIface) *CommentRepository {
	return &CommentRepository{db: db}
}

const commentColumns = `id, owner_id, post_id, content, created_at`

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var comment domain.Comment
	err := row.Scan(&comment.ID, &comment.OwnerID, &comment.PostID,
		&comment.Content, &comment.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan comment: %w", err)
	}

	return &comment, nil
}

func collectComments(rows pgx.Rows) ([]domain.Comment, error) {
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		err := rows.Scan(&comment.ID, &comment.OwnerID, &comment.PostID,
			&comment.Content, &comment.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO comments (id, owner_id, post_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, comment.ID, comment.OwnerID, comment.PostID, comment.Content, comment.CreatedAt)

	return err
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1 LIMIT 1`

	return scanComment(r.db.QueryRow(ctx, query, id))
}

func (r *CommentRepository) List(ctx context.Context, offset, limit int) ([]domain.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments ORDER BY created_at DESC`

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
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return collectComments(rows)
}

func (r *CommentRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM comments`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}

	return total, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]domain.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE post_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments by post: %w", err)
	}

	return collectComments(rows)
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id, content string) (*domain.Comment, error) {
	query := `
		UPDATE comments
		SET content = $2
		WHERE id = $1
		RETURNING ` + commentColumns

	return scanComment(r.db.QueryRow(ctx, query, id, content))
}

func (r *CommentRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
