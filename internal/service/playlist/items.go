package playlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
	"github.com/heartmarshall/interviewprep-backend/pkg/ctxutil"
)

// AddItem appends a published question to a playlist. Idempotent: adding a
// question that is already in the playlist is not an error.
func (s *Service) AddItem(ctx context.Context, input ItemInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		question, err := s.questions.GetBySlug(txCtx, input.QuestionSlug)
		if err != nil {
			return fmt.Errorf("get question: %w", err)
		}
		// Readers only ever see published questions.
		if !question.Status.IsPublished() {
			return fmt.Errorf("question %s: %w", input.QuestionSlug, domain.ErrNotFound)
		}

		if err := s.playlists.AddItem(txCtx, userID, input.PlaylistID, question.ID); err != nil {
			return fmt.Errorf("add item: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "question added to playlist",
		slog.String("user_id", userID.String()),
		slog.String("playlist_id", input.PlaylistID.String()),
		slog.String("question_slug", input.QuestionSlug),
	)
	return nil
}

// RemoveItem removes a question from a playlist. Removing a question that is
// not in the playlist is not an error.
func (s *Service) RemoveItem(ctx context.Context, input ItemInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		question, err := s.questions.GetBySlug(txCtx, input.QuestionSlug)
		if err != nil {
			return fmt.Errorf("get question: %w", err)
		}

		if err := s.playlists.RemoveItem(txCtx, userID, input.PlaylistID, question.ID); err != nil {
			return fmt.Errorf("remove item: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "question removed from playlist",
		slog.String("user_id", userID.String()),
		slog.String("playlist_id", input.PlaylistID.String()),
		slog.String("question_slug", input.QuestionSlug),
	)
	return nil
}
