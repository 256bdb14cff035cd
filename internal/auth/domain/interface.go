package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/arbelcharny-source/blog-service/internal/auth/domain UserRepository

import "context"

// PasswordHasher is the one-way vault for user passwords. NewUser requires
// one, which keeps plaintexts out of the aggregate.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) bool
}

// UserRepository is the persistence boundary for users and their refresh
// token sets. Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error

	AppendRefreshToken(ctx context.Context, userID, token string) error
	// RotateRefreshToken swaps old for new in one conditional statement.
	// It reports false when old was not in the live set, which is how a
	// rotated-out or revoked token is rejected without racing a concurrent
	// login or logout.
	RotateRefreshToken(ctx context.Context, userID, oldToken, newToken string) (bool, error)
	RemoveRefreshToken(ctx context.Context, userID, token string) error
	ClearRefreshTokens(ctx context.Context, userID string) error
	IsRefreshTokenLive(ctx context.Context, userID, token string) (bool, error)
}
