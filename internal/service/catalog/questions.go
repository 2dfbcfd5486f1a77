package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// ListQuestions returns published questions, optionally narrowed to one topic.
func (s *Service) ListQuestions(ctx context.Context, f domain.QuestionFilter) ([]domain.PublishedQuestion, error) {
	if f.TopicSlug != "" && !domain.IsValidSlug(f.TopicSlug) {
		return nil, domain.NewValidationError("topic", "invalid slug")
	}
	if f.Offset < 0 {
		return nil, domain.NewValidationError("offset", "must be >= 0")
	}
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultQuestionLimit
	case f.Limit > MaxQuestionLimit:
		f.Limit = MaxQuestionLimit
	}

	questions, err := s.catalog.ListPublishedQuestions(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListQuestions: %w", err)
	}
	return questions, nil
}

// GetQuestion returns a published question with its primary answer and topics.
// Drafts are reported as not found.
func (s *Service) GetQuestion(ctx context.Context, slug string) (*domain.QuestionDetail, error) {
	if err := domain.ValidateSlug("slug", slug); err != nil {
		return nil, err
	}

	q, err := s.questions.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetQuestion: %w", err)
	}
	if !q.Status.IsPublished() {
		return nil, fmt.Errorf("question %s: %w", slug, domain.ErrNotFound)
	}

	detail := &domain.QuestionDetail{Question: *q}

	answer, err := s.answers.GetPrimary(ctx, q.ID)
	switch {
	case err == nil:
		if answer.Status.IsPublished() {
			detail.Answer = answer
		}
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, fmt.Errorf("catalog.GetQuestion answer: %w", err)
	}

	labels, err := s.questions.ListTopicLabels(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetQuestion topics: %w", err)
	}
	detail.Topics = labels

	return detail, nil
}
