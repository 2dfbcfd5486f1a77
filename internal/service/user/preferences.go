package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
	"github.com/heartmarshall/interviewprep-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}
	return user, nil
}

// GetUserPreferences returns the authenticated user's reading preferences,
// or the defaults when nothing was saved yet.
func (s *Service) GetUserPreferences(ctx context.Context) (*domain.UserPreferences, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	prefs, err := s.loadUserPreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetUserPreferences: %w", err)
	}
	return prefs, nil
}

// UpdateUserPreferences applies a partial update to the reading preferences.
func (s *Service) UpdateUserPreferences(ctx context.Context, input UpdateUserPreferencesInput) (*domain.UserPreferences, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		saved   *domain.UserPreferences
		changes map[string]any
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.loadUserPreferences(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get current preferences: %w", err)
		}

		next := applyUserPreferenceChanges(*current, input)
		changes = buildUserPreferenceChanges(*current, next)

		saved, err = s.prefs.UpsertUserPreferences(txCtx, next)
		if err != nil {
			return fmt.Errorf("save preferences: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateUserPreferences: %w", err)
	}

	s.log.InfoContext(ctx, "preferences updated",
		slog.String("user_id", userID.String()),
		slog.Any("changes", changes))

	return saved, nil
}

// GetAccountPreferences returns account settings. Before the first save the
// display name comes from the user row.
func (s *Service) GetAccountPreferences(ctx context.Context) (*domain.AccountPreferences, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	prefs, err := s.loadAccountPreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetAccountPreferences: %w", err)
	}
	return prefs, nil
}

// UpdateAccountPreferences applies a partial update to account settings.
// The display name is mirrored onto the user row.
func (s *Service) UpdateAccountPreferences(ctx context.Context, input UpdateAccountPreferencesInput) (*domain.AccountPreferences, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var saved *domain.AccountPreferences
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.loadAccountPreferences(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get current account preferences: %w", err)
		}

		next := *current
		if input.DisplayName != nil {
			next.DisplayName = strings.TrimSpace(*input.DisplayName)
		}
		if input.EmailOptIn != nil {
			next.EmailOptIn = *input.EmailOptIn
		}

		saved, err = s.prefs.UpsertAccountPreferences(txCtx, next)
		if err != nil {
			return fmt.Errorf("save account preferences: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateAccountPreferences: %w", err)
	}

	s.log.InfoContext(ctx, "account preferences updated",
		slog.String("user_id", userID.String()))

	return saved, nil
}

func (s *Service) loadUserPreferences(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error) {
	prefs, err := s.prefs.GetUserPreferences(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultUserPreferences(userID)
		return &def, nil
	}
	return prefs, err
}

func (s *Service) loadAccountPreferences(ctx context.Context, userID uuid.UUID) (*domain.AccountPreferences, error) {
	prefs, err := s.prefs.GetAccountPreferences(ctx, userID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &domain.AccountPreferences{UserID: userID, DisplayName: user.DisplayName}, nil
}

// applyUserPreferenceChanges merges the input changes into current preferences.
func applyUserPreferenceChanges(current domain.UserPreferences, input UpdateUserPreferencesInput) domain.UserPreferences {
	result := current

	if input.Theme != nil {
		result.Theme = *input.Theme
	}
	if input.ShowAnswersByDefault != nil {
		result.ShowAnswersByDefault = *input.ShowAnswersByDefault
	}
	if input.DailyGoal != nil {
		result.DailyGoal = *input.DailyGoal
	}

	return result
}

// buildUserPreferenceChanges describes changed fields for the update log.
func buildUserPreferenceChanges(old, new domain.UserPreferences) map[string]any {
	changes := make(map[string]any)

	if old.Theme != new.Theme {
		changes["theme"] = map[string]any{"old": old.Theme, "new": new.Theme}
	}
	if old.ShowAnswersByDefault != new.ShowAnswersByDefault {
		changes["show_answers_by_default"] = map[string]any{"old": old.ShowAnswersByDefault, "new": new.ShowAnswersByDefault}
	}
	if old.DailyGoal != new.DailyGoal {
		changes["daily_goal"] = map[string]any{"old": old.DailyGoal, "new": new.DailyGoal}
	}

	return changes
}
