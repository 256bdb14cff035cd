package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            string
	Username      string
	Email         string
	FullName      string
	PasswordHash  string
	RefreshTokens []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser hashes the plaintext password itself, so a User built through the
// factory can never carry a plaintext in PasswordHash.
func NewUser(username, email, fullName, password string, hasher PasswordHasher) (*User, error) {
	passwordHash, err := hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	return &User{
		ID:            uuid.New().String(),
		Username:      username,
		Email:         strings.ToLower(strings.TrimSpace(email)),
		FullName:      fullName,
		PasswordHash:  passwordHash,
		RefreshTokens: []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}
