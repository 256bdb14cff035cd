package service

import (
	"context"

	"github.com/arbelcharny-source/blog-service/internal/auth/domain"
	"github.com/arbelcharny-source/blog-service/internal/auth/dto"
	autherror "github.com/arbelcharny-source/blog-service/internal/errors"
)

type UserService struct {
	repo         domain.UserRepository
	tokenService TokenGenerator
	hasher       domain.PasswordHasher
}

func NewUserService(repo domain.UserRepository, tokenService TokenGenerator, hasher domain.PasswordHasher) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		hasher:       hasher,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	// One lookup covers both uniqueness constraints. When both collide the
	// username conflict is reported.
	existing, err := s.repo.GetByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Username == input.Username {
			return nil, autherror.ErrUsernameTaken
		}
		return nil, autherror.ErrEmailTaken
	}

	user, err := domain.NewUser(input.Username, input.Email, input.FullName, input.Password, s.hasher)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := s.tokenService.Generate(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AppendRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:         dto.NewUserOutput(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	// Unknown username and wrong password answer identically.
	if user == nil || !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, autherror.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokenService.Generate(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AppendRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:         dto.NewUserOutput(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh rotates a live refresh token for a fresh pair. Signature failures,
// expiry, a missing user, and a token already rotated out or revoked all
// surface as the same ErrInvalidToken.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.tokenService.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, autherror.ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidToken
	}

	live, err := s.repo.IsRefreshTokenLive(ctx, user.ID, refreshToken)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, autherror.ErrInvalidToken
	}

	accessToken, newRefreshToken, err := s.tokenService.Generate(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, err
	}

	// The conditional rotate is the authoritative single-use check: if a
	// concurrent refresh or logout won the race since the liveness check,
	// zero rows match and the presented token is rejected.
	rotated, err := s.repo.RotateRefreshToken(ctx, user.ID, refreshToken, newRefreshToken)
	if err != nil {
		return nil, err
	}
	if !rotated {
		return nil, autherror.ErrInvalidToken
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout revokes a single session. Removing a token that is already gone is
// not an error.
func (s *UserService) Logout(ctx context.Context, userID, refreshToken string) error {
	return s.repo.RemoveRefreshToken(ctx, userID, refreshToken)
}

// LogoutAll revokes every session the user has.
func (s *UserService) LogoutAll(ctx context.Context, userID string) error {
	return s.repo.ClearRefreshTokens(ctx, userID)
}
