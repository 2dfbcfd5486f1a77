package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// SaveDraft creates or updates a question, its primary answer and its topic
// links as one draft. Saving is keyed by slug: repeating a save with the same
// custom slug updates the same rows.
//
// Without input.QuestionSlug every call allocates a fresh slug from the title
// ("foo", then "foo-2", ...) and creates a new question. Clients that save the
// same draft repeatedly must send back the QuestionSlug from the first result.
//
// A published question is only overwritten when input.AllowDemote is set; the
// question and its primary answer then move back to draft.
func (s *Service) SaveDraft(ctx context.Context, auth domain.AuthContext, input SaveDraftInput) (*SaveDraftResult, error) {
	if err := authorize(auth); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	summary := strings.TrimSpace(input.Summary)

	var (
		result  SaveDraftResult
		demoted bool
		created bool
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// A replayed transaction starts from scratch.
		result, demoted, created = SaveDraftResult{}, false, false

		topics, err := s.resolveTopics(txCtx, input.ExistingTopicSlugs, input.CreateTopic)
		if err != nil {
			return err
		}
		result.Warnings = append(result.Warnings, topics.Warnings...)

		slug := input.QuestionSlug
		if slug == "" {
			slug, err = allocateSlug(txCtx, s.questions.SlugExists, domain.Slugify(title, s.slugFallback()))
			if err != nil {
				return fmt.Errorf("allocate question slug: %w", err)
			}
		}

		existing, err := s.questions.GetBySlugForUpdate(txCtx, slug)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("load question: %w", err)
		}
		if existing != nil && existing.Status.IsPublished() {
			if !input.AllowDemote {
				return domain.NewConflictError("question %q is published; saving a draft would unpublish it", slug)
			}
			demoted = true
		}

		warning, err := s.questionDuplicateWarning(txCtx, title, slug, false)
		if err != nil {
			return err
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		// The question is demoted before links are replaced, so the
		// last-link guard never sees a published parent here.
		var question *domain.Question
		if existing == nil {
			question, err = s.questions.Create(txCtx, slug, title, summary)
			created = true
		} else {
			question, err = s.questions.UpdateDraft(txCtx, existing.ID, title, summary)
		}
		if err != nil {
			return fmt.Errorf("save question: %w", err)
		}

		if err := s.questions.ReplaceLinks(txCtx, question.ID, topics.IDs()); err != nil {
			return fmt.Errorf("replace topic links: %w", err)
		}

		if err := s.savePrimaryAnswer(txCtx, question, input.AnswerMarkdown, input.AllowDemote); err != nil {
			return err
		}

		labels, err := s.questions.ListTopicLabels(txCtx, question.ID)
		if err != nil {
			return fmt.Errorf("list topic labels: %w", err)
		}

		result.QuestionSlug = question.Slug
		result.TopicSlugs, result.CategoryLabels = flattenLabels(labels)
		result.PreviewURL = s.cfg.PreviewURL(question.Slug)

		return s.record(txCtx, auth, domain.AuditEntityQuestion, question.Slug, domain.AuditActionSaveDraft, map[string]any{
			"title":   title,
			"topics":  result.TopicSlugs,
			"created": created,
			"demoted": demoted,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}

	s.log.InfoContext(ctx, "draft saved",
		slog.String("user_id", auth.UserID.String()),
		slog.String("question_slug", result.QuestionSlug),
		slog.Bool("created", created),
		slog.Bool("demoted", demoted),
		slog.Int("topics", len(result.TopicSlugs)),
	)

	return &result, nil
}

func (s *Service) savePrimaryAnswer(ctx context.Context, question *domain.Question, markdown string, allowDemote bool) error {
	answer, err := s.answers.GetPrimaryForUpdate(ctx, question.ID)
	if errors.Is(err, domain.ErrNotFound) {
		if _, err := s.answers.CreatePrimary(ctx, question.ID, markdown); err != nil {
			return fmt.Errorf("create answer: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("load answer: %w", err)
	}

	if answer.Status.IsPublished() && !allowDemote {
		return domain.NewConflictError("primary answer of %q is published; saving a draft would unpublish it", question.Slug)
	}
	if _, err := s.answers.UpdateDraft(ctx, answer.ID, markdown); err != nil {
		return fmt.Errorf("update answer: %w", err)
	}
	return nil
}

// flattenLabels returns topic slugs in link order and the distinct
// "Category / Subcategory" labels in first-seen order.
func flattenLabels(labels []domain.TopicLabel) ([]string, []string) {
	slugs := make([]string, 0, len(labels))
	categories := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		slugs = append(slugs, l.TopicSlug)
		label := l.CategoryLabel()
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		categories = append(categories, label)
	}
	return slugs, categories
}
