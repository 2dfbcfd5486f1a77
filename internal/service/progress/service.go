package progress

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
	"github.com/heartmarshall/interviewprep-backend/pkg/ctxutil"
)

type progressRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.QuestionProgress, error)
	Upsert(ctx context.Context, userID, questionID uuid.UUID, status domain.ProgressStatus) (*domain.QuestionProgress, error)
}

type questionRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Question, error)
}

// Service tracks per-user study progress on published questions.
type Service struct {
	progress  progressRepo
	questions questionRepo
	log       *slog.Logger
}

func NewService(log *slog.Logger, progress progressRepo, questions questionRepo) *Service {
	return &Service{
		progress:  progress,
		questions: questions,
		log:       log.With("service", "progress"),
	}
}

// UpdateInput sets the progress status of one question.
type UpdateInput struct {
	QuestionSlug string
	Status       domain.ProgressStatus
}

func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if !domain.IsValidSlug(i.QuestionSlug) {
		errs = append(errs, domain.FieldError{Field: "questionSlug", Message: "invalid slug"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of not_started, in_progress, mastered"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// List returns every progress record of the authenticated user.
func (s *Service) List(ctx context.Context) ([]domain.QuestionProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.progress.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("progress.List: %w", err)
	}
	return items, nil
}

// Update records the status for a published question.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.QuestionProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	question, err := s.questions.GetBySlug(ctx, input.QuestionSlug)
	if err != nil {
		return nil, fmt.Errorf("progress.Update get question: %w", err)
	}
	if !question.Status.IsPublished() {
		return nil, fmt.Errorf("question %s: %w", input.QuestionSlug, domain.ErrNotFound)
	}

	p, err := s.progress.Upsert(ctx, userID, question.ID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("progress.Update: %w", err)
	}
	p.QuestionSlug = question.Slug

	s.log.DebugContext(ctx, "progress updated",
		slog.String("user_id", userID.String()),
		slog.String("question_slug", question.Slug),
		slog.String("status", input.Status.String()))

	return p, nil
}
