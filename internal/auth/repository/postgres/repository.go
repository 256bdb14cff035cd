package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/arbelcharny-source/blog-service/internal/auth/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the slice of pgxpool.Pool the repository needs. pgxmock
// satisfies it too, which is what the tests run against.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, username, email, full_name, password_hash, refresh_tokens, created_at, updated_at`

func (r *PostgresRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.FullName,
		&user.PasswordHash, &user.RefreshTokens, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}

	return &user, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 LIMIT 1`

	return r.scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *PostgresRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	// Username matches sort first so a double collision reports the
	// username conflict deterministically.
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE username = $1 OR email = $2
		ORDER BY (username = $1) DESC
		LIMIT 1`

	return r.scanUser(r.db.QueryRow(ctx, query, username, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`

	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, username, email, full_name, password_hash, refresh_tokens, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, user.ID, user.Username, user.Email, user.FullName, user.PasswordHash,
		user.RefreshTokens, user.CreatedAt, user.UpdatedAt)

	return err
}

func (r *PostgresRepository) AppendRefreshToken(ctx context.Context, userID, token string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET refresh_tokens = array_append(refresh_tokens, $2), updated_at = now()
		WHERE id = $1
	`, userID, token)

	return err
}

// RotateRefreshToken removes oldToken and appends newToken as a single
// conditional statement. Concurrent appends from other devices are preserved
// and a raced-out token yields zero affected rows.
func (r *PostgresRepository) RotateRefreshToken(ctx context.Context, userID, oldToken, newToken string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET refresh_tokens = array_append(array_remove(refresh_tokens, $2), $3), updated_at = now()
		WHERE id = $1 AND $2 = ANY(refresh_tokens)
	`, userID, oldToken, newToken)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) RemoveRefreshToken(ctx context.Context, userID, token string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET refresh_tokens = array_remove(refresh_tokens, $2), updated_at = now()
		WHERE id = $1
	`, userID, token)

	return err
}

func (r *PostgresRepository) ClearRefreshTokens(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET refresh_tokens = '{}', updated_at = now()
		WHERE id = $1
	`, userID)

	return err
}

func (r *PostgresRepository) IsRefreshTokenLive(ctx context.Context, userID, token string) (bool, error) {
	var live bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE id = $1 AND $2 = ANY(refresh_tokens))
	`, userID, token).Scan(&live)
	if err != nil {
		return false, fmt.Errorf("failed to check refresh token liveness: %w", err)
	}

	return live, nil
}

// UserExists is the lookup the blog services use to validate owners.
func (r *PostgresRepository) UserExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}
