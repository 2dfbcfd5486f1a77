package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/config"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, email, displayName, passwordHash string) (*domain.User, error)
	GetRole(ctx context.Context, userID uuid.UUID) (domain.UserRole, error)
	GrantRole(ctx context.Context, userID uuid.UUID, role domain.UserRole) error
}

// jwtManager defines the session token interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (string, time.Time, error)
	ValidateAccessToken(token string) (uuid.UUID, domain.UserRole, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}

// ValidateToken checks a session token and returns the caller's identity.
// Any failure is reported as domain.ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, domain.UserRole, error) {
	userID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return userID, role, nil
}

// issueToken signs a session token carrying the user's current role.
func (s *Service) issueToken(ctx context.Context, user *domain.User) (*AuthResult, error) {
	role, err := s.users.GetRole(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get role: %w", err)
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(user.ID, role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
		Role:        role,
	}, nil
}
