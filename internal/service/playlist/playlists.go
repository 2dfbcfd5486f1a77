package playlist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
	"github.com/heartmarshall/interviewprep-backend/pkg/ctxutil"
)

// ListPlaylists returns the authenticated user's playlists with their items.
func (s *Service) ListPlaylists(ctx context.Context) ([]domain.Playlist, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	playlists, err := s.playlists.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	return playlists, nil
}

// CreatePlaylist creates a new playlist for the authenticated user.
// Names are unique per user.
func (s *Service) CreatePlaylist(ctx context.Context, input CreatePlaylistInput) (*domain.Playlist, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	var playlist *domain.Playlist
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.playlists.List(txCtx, userID)
		if err != nil {
			return fmt.Errorf("list playlists: %w", err)
		}
		if len(existing) >= MaxPlaylistsPerUser {
			return domain.NewValidationError("playlists", fmt.Sprintf("limit reached (max %d)", MaxPlaylistsPerUser))
		}

		playlist, err = s.playlists.Create(txCtx, userID, name, trimOrNil(input.Description))
		if err != nil {
			return fmt.Errorf("create playlist: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "playlist created",
		slog.String("user_id", userID.String()),
		slog.String("playlist_id", playlist.ID.String()),
	)

	return playlist, nil
}

// DeletePlaylist removes one of the authenticated user's playlists.
func (s *Service) DeletePlaylist(ctx context.Context, playlistID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.playlists.Delete(ctx, userID, playlistID); err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}

	s.log.InfoContext(ctx, "playlist deleted",
		slog.String("user_id", userID.String()),
		slog.String("playlist_id", playlistID.String()),
	)
	return nil
}
