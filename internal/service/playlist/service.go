package playlist

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

type playlistRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Playlist, error)
	Create(ctx context.Context, userID uuid.UUID, name string, description *string) (*domain.Playlist, error)
	Delete(ctx context.Context, userID, playlistID uuid.UUID) error
	AddItem(ctx context.Context, userID, playlistID, questionID uuid.UUID) error
	RemoveItem(ctx context.Context, userID, playlistID, questionID uuid.UUID) error
}

type questionRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Question, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxPlaylistsPerUser = 50
)

// Service manages reader playlists of published questions.
type Service struct {
	playlists playlistRepo
	questions questionRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new playlist service.
func NewService(
	log *slog.Logger,
	playlists playlistRepo,
	questions questionRepo,
	tx txManager,
) *Service {
	return &Service{
		playlists: playlists,
		questions: questions,
		tx:        tx,
		log:       log.With("service", "playlist"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
