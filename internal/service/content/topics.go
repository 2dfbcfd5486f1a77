package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// resolvedTopics is the ordered, de-duplicated topic set for a question.
type resolvedTopics struct {
	Topics   []domain.Topic
	Warnings []string
}

func (r resolvedTopics) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(r.Topics))
	for i, t := range r.Topics {
		ids[i] = t.ID
	}
	return ids
}

// resolveTopics turns existing slugs plus an optional inline topic into the
// list of topics to link. Existing topics keep input order and come first;
// repeated entries are dropped keeping the first occurrence.
func (s *Service) resolveTopics(ctx context.Context, existingSlugs []string, create *CreateTopicInput) (resolvedTopics, error) {
	var res resolvedTopics

	slugs := dedupe(existingSlugs)
	if len(slugs) > 0 {
		found, err := s.topics.GetBySlugs(ctx, slugs)
		if err != nil {
			return res, fmt.Errorf("load topics: %w", err)
		}
		bySlug := make(map[string]domain.Topic, len(found))
		for _, t := range found {
			bySlug[t.Slug] = t
		}
		for _, slug := range slugs {
			t, ok := bySlug[slug]
			if !ok {
				return res, &domain.ReferenceError{Kind: "topic", Slug: slug}
			}
			res.Topics = append(res.Topics, t)
		}
	}

	if create != nil {
		topic, warning, _, err := s.createOrReuseTopic(ctx, *create)
		if err != nil {
			return res, err
		}
		if warning != "" {
			res.Warnings = append(res.Warnings, warning)
		}
		if !containsTopic(res.Topics, topic.ID) {
			res.Topics = append(res.Topics, *topic)
		}
	}

	if len(res.Topics) == 0 {
		return res, domain.NewValidationError("existingTopicSlugs", "at least one topic required")
	}
	return res, nil
}

// createOrReuseTopic returns a topic with the same name in the subcategory if
// one exists, otherwise inserts a new one. The bool reports whether a row was
// inserted.
func (s *Service) createOrReuseTopic(ctx context.Context, in CreateTopicInput) (*domain.Topic, string, bool, error) {
	sub, err := s.subcategories.GetSubcategoryBySlug(ctx, in.SubcategorySlug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", false, &domain.ReferenceError{Kind: "subcategory", Slug: in.SubcategorySlug}
		}
		return nil, "", false, fmt.Errorf("load subcategory: %w", err)
	}

	name := strings.TrimSpace(in.Name)
	dups, err := s.findTopicDuplicates(ctx, sub.ID, name, "")
	if err != nil {
		return nil, "", false, err
	}
	if len(dups) > 0 {
		existing := dups[0]
		return &existing, topicReuseWarning(name, existing), false, nil
	}

	slug := in.Slug
	if slug != "" {
		taken, err := s.topics.SlugExists(ctx, slug)
		if err != nil {
			return nil, "", false, fmt.Errorf("check topic slug: %w", err)
		}
		if taken {
			return nil, "", false, domain.NewConflictError("topic slug %q is already taken", slug)
		}
	} else {
		slug, err = allocateSlug(ctx, s.topics.SlugExists, domain.Slugify(name, s.slugFallback()))
		if err != nil {
			return nil, "", false, fmt.Errorf("allocate topic slug: %w", err)
		}
	}

	status := domain.ContentStatusDraft
	if in.Publish {
		status = domain.ContentStatusPublished
	}

	created, err := s.topics.Create(ctx, domain.Topic{
		Slug:             slug,
		Name:             name,
		ShortDescription: strings.TrimSpace(in.ShortDescription),
		SubcategoryID:    sub.ID,
		Status:           status,
	})
	if err != nil {
		return nil, "", false, fmt.Errorf("create topic: %w", err)
	}
	return created, "", true, nil
}

// CreateTopic creates a standalone topic, or returns the existing topic with
// the same name in the subcategory.
func (s *Service) CreateTopic(ctx context.Context, auth domain.AuthContext, input CreateTopicInput) (*TopicResult, error) {
	if err := authorize(auth); err != nil {
		return nil, err
	}
	if err := input.ValidateStandalone(); err != nil {
		return nil, err
	}

	var result TopicResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		result = TopicResult{}
		topic, warning, created, err := s.createOrReuseTopic(txCtx, input)
		if err != nil {
			return err
		}
		result.Topic = *topic
		result.Created = created
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		if !created {
			return nil
		}
		return s.record(txCtx, auth, domain.AuditEntityTopic, topic.Slug, domain.AuditActionCreateTopic, map[string]any{
			"name":   topic.Name,
			"status": topic.Status.String(),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	if result.Created {
		s.log.InfoContext(ctx, "topic created",
			slog.String("user_id", auth.UserID.String()),
			slog.String("topic_slug", result.Topic.Slug),
			slog.String("status", result.Topic.Status.String()),
		)
	}
	return &result, nil
}

func dedupe(slugs []string) []string {
	seen := make(map[string]struct{}, len(slugs))
	out := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func containsTopic(topics []domain.Topic, id uuid.UUID) bool {
	for _, t := range topics {
		if t.ID == id {
			return true
		}
	}
	return false
}
