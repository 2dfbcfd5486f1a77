package compose

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/interviewprep-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
	"github.com/heartmarshall/interviewprep-backend/internal/service/content"
)

type suggestTopicsOutput struct {
	Topics []struct {
		Slug   string `json:"slug"`
		Reason string `json:"reason"`
	} `json:"topics"`
	NewTopic *struct {
		Name             string `json:"name"`
		SubcategorySlug  string `json:"subcategorySlug"`
		ShortDescription string `json:"shortDescription"`
	} `json:"newTopic"`
}

// SuggestTopics asks the model which catalog topics fit the draft. Slugs the
// catalog does not know are dropped with a warning.
func (s *Service) SuggestTopics(ctx context.Context, auth domain.AuthContext, input SuggestTopicsInput) (*SuggestTopicsResult, error) {
	if err := authorize(auth); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		topics        []domain.Topic
		subcategories []domain.Subcategory
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		topics, err = s.catalog.ListTopics(gctx, false)
		return err
	})
	g.Go(func() error {
		var err error
		subcategories, err = s.catalog.ListSubcategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compose.SuggestTopics load catalog: %w", err)
	}

	var out suggestTopicsOutput
	err := s.llm.CompleteJSON(ctx, llm.Request{
		System: composerSystemPrompt,
		Prompt: suggestTopicsPrompt(input.QuestionDraft, topics, subcategories),
		Schema: suggestTopicsSchema,
	}, &out)
	if err != nil {
		return nil, fmt.Errorf("compose.SuggestTopics: %w", err)
	}

	result := reconcileSuggestions(out, topics, subcategories)

	s.log.InfoContext(ctx, "topics suggested",
		slog.String("user_id", auth.UserID.String()),
		slog.Int("suggestions", len(result.Suggestions)),
		slog.Bool("new_topic", result.NewTopic != nil),
		slog.Int("warnings", len(result.Warnings)))

	return result, nil
}

// reconcileSuggestions keeps only suggestions that match the catalog. A
// proposed new topic whose name already exists in its subcategory becomes a
// regular suggestion.
func reconcileSuggestions(out suggestTopicsOutput, topics []domain.Topic, subcategories []domain.Subcategory) *SuggestTopicsResult {
	bySlug := make(map[string]domain.Topic, len(topics))
	for _, t := range topics {
		bySlug[t.Slug] = t
	}
	subSlugs := make(map[uuid.UUID]string, len(subcategories))
	subIDs := make(map[string]uuid.UUID, len(subcategories))
	for _, sub := range subcategories {
		subSlugs[sub.ID] = sub.Slug
		subIDs[sub.Slug] = sub.ID
	}

	result := &SuggestTopicsResult{}
	seen := make(map[string]bool)
	add := func(t domain.Topic, reason string) {
		if seen[t.Slug] || len(result.Suggestions) >= MaxSuggestions {
			return
		}
		seen[t.Slug] = true
		result.Suggestions = append(result.Suggestions, TopicSuggestion{
			Slug:            t.Slug,
			Name:            t.Name,
			SubcategorySlug: subSlugs[t.SubcategoryID],
			Reason:          strings.TrimSpace(reason),
		})
	}

	for _, sug := range out.Topics {
		t, ok := bySlug[sug.Slug]
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Ignored unknown topic suggestion %q", sug.Slug))
			continue
		}
		add(t, sug.Reason)
	}

	if nt := out.NewTopic; nt != nil {
		name := strings.TrimSpace(nt.Name)
		subID, ok := subIDs[nt.SubcategorySlug]
		switch {
		case !ok:
			result.Warnings = append(result.Warnings, fmt.Sprintf("Ignored new topic %q: unknown subcategory %q", name, nt.SubcategorySlug))
		default:
			if existing, found := findByName(topics, subID, name); found {
				add(existing, "matches the proposed new topic")
				break
			}
			result.NewTopic = &content.CreateTopicInput{
				Name:             name,
				ShortDescription: strings.TrimSpace(nt.ShortDescription),
				SubcategorySlug:  nt.SubcategorySlug,
			}
		}
	}

	return result
}

func findByName(topics []domain.Topic, subcategoryID uuid.UUID, name string) (domain.Topic, bool) {
	want := domain.NormalizeText(name)
	for _, t := range topics {
		if t.SubcategoryID == subcategoryID && domain.NormalizeText(t.Name) == want {
			return t, true
		}
	}
	return domain.Topic{}, false
}
