package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	authpkg "github.com/heartmarshall/interviewprep-backend/internal/auth"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// Login authenticates a user with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if user.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	ok, err := authpkg.CheckPassword(user.PasswordHash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login check password: %w", err)
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", result.Role.String()))

	return result, nil
}

// Register creates a member account with email + password authentication.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.DisplayName = strings.TrimSpace(input.DisplayName)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := authpkg.HashPassword(input.Password, s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	displayName := input.DisplayName
	if displayName == "" {
		displayName, _, _ = strings.Cut(input.Email, "@")
	}

	// Email uniqueness is enforced by the users_email_key constraint.
	user, err := s.users.Create(ctx, input.Email, displayName, hash)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()))

	return result, nil
}

// Promote grants role to the account with the given email.
func (s *Service) Promote(ctx context.Context, email string, role domain.UserRole) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be one of admin, editor, member")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("auth.Promote get user: %w", err)
	}
	if err := s.users.GrantRole(ctx, user.ID, role); err != nil {
		return nil, fmt.Errorf("auth.Promote grant role: %w", err)
	}

	s.log.InfoContext(ctx, "role granted",
		slog.String("user_id", user.ID.String()),
		slog.String("role", role.String()))

	return user, nil
}
