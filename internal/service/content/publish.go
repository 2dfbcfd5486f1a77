package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// Publish makes a draft question visible together with its primary answer and
// any linked topics that are still drafts. Publishing an already published
// question changes nothing and reports AlreadyPublished.
func (s *Service) Publish(ctx context.Context, auth domain.AuthContext, input PublishInput) (*PublishResult, error) {
	if err := authorize(auth); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result PublishResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		result = PublishResult{}
		question, err := s.questions.GetBySlugForUpdate(txCtx, input.QuestionSlug)
		if err != nil {
			return fmt.Errorf("load question: %w", err)
		}

		links, err := s.questions.CountLinks(txCtx, question.ID)
		if err != nil {
			return fmt.Errorf("count topic links: %w", err)
		}
		if links == 0 {
			return domain.NewGuardrailError(fmt.Sprintf("question %q has no linked topics", question.Slug))
		}

		if _, err := s.answers.GetPrimaryForUpdate(txCtx, question.ID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewGuardrailError(fmt.Sprintf("question %q has no primary answer", question.Slug))
			}
			return fmt.Errorf("load answer: %w", err)
		}

		warning, err := s.questionDuplicateWarning(txCtx, question.Title, question.Slug, true)
		if err != nil {
			return err
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		topicSlugs, err := s.topics.PublishForQuestion(txCtx, question.ID)
		if err != nil {
			return fmt.Errorf("publish topics: %w", err)
		}
		if _, err := s.answers.PublishPrimary(txCtx, question.ID); err != nil {
			return fmt.Errorf("publish answer: %w", err)
		}
		changed, err := s.questions.Publish(txCtx, question.ID)
		if err != nil {
			return fmt.Errorf("publish question: %w", err)
		}

		// Links may have been removed by a concurrent writer since the
		// first count.
		links, err = s.questions.CountLinks(txCtx, question.ID)
		if err != nil {
			return fmt.Errorf("recount topic links: %w", err)
		}
		if links == 0 {
			return domain.NewGuardrailError(fmt.Sprintf("question %q lost its topic links during publish", question.Slug))
		}

		published, err := s.questions.GetBySlug(txCtx, question.Slug)
		if err != nil {
			return fmt.Errorf("reload question: %w", err)
		}

		result.QuestionSlug = published.Slug
		result.Status = published.Status
		result.PublishedAt = published.PublishedAt
		result.PublishedTopicSlugs = topicSlugs
		result.AlreadyPublished = !changed
		if !changed {
			return nil
		}
		return s.record(txCtx, auth, domain.AuditEntityQuestion, published.Slug, domain.AuditActionPublish, map[string]any{
			"topics_published": topicSlugs,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("publish: %w", err)
	}

	s.log.InfoContext(ctx, "question published",
		slog.String("user_id", auth.UserID.String()),
		slog.String("question_slug", result.QuestionSlug),
		slog.Bool("already_published", result.AlreadyPublished),
		slog.Int("topics_published", len(result.PublishedTopicSlugs)),
	)

	return &result, nil
}

// Unpublish moves a question and its primary answer back to draft. Linked
// topics are shared with other questions and keep their status.
func (s *Service) Unpublish(ctx context.Context, auth domain.AuthContext, input UnpublishInput) (*UnpublishResult, error) {
	if err := authorize(auth); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result UnpublishResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		question, err := s.questions.GetBySlugForUpdate(txCtx, input.QuestionSlug)
		if err != nil {
			return fmt.Errorf("load question: %w", err)
		}

		changed, err := s.questions.Demote(txCtx, question.ID)
		if err != nil {
			return fmt.Errorf("demote question: %w", err)
		}
		if _, err := s.answers.DemotePrimary(txCtx, question.ID); err != nil {
			return fmt.Errorf("demote answer: %w", err)
		}

		result.QuestionSlug = question.Slug
		result.Status = domain.ContentStatusDraft
		result.WasPublished = changed
		if !changed {
			return nil
		}
		return s.record(txCtx, auth, domain.AuditEntityQuestion, question.Slug, domain.AuditActionUnpublish, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("unpublish: %w", err)
	}

	s.log.InfoContext(ctx, "question unpublished",
		slog.String("user_id", auth.UserID.String()),
		slog.String("question_slug", result.QuestionSlug),
		slog.Bool("was_published", result.WasPublished),
	)

	return &result, nil
}
