package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// preferencesRepo defines the preference storage needed by user service.
type preferencesRepo interface {
	GetUserPreferences(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error)
	UpsertUserPreferences(ctx context.Context, p domain.UserPreferences) (*domain.UserPreferences, error)
	GetAccountPreferences(ctx context.Context, userID uuid.UUID) (*domain.AccountPreferences, error)
	UpsertAccountPreferences(ctx context.Context, p domain.AccountPreferences) (*domain.AccountPreferences, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements profile and preference operations for the signed-in user.
type Service struct {
	log   *slog.Logger
	users userRepo
	prefs preferencesRepo
	tx    txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	prefs preferencesRepo,
	tx txManager,
) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		prefs: prefs,
		tx:    tx,
	}
}
