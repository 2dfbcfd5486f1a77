package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// questionDuplicateWarning looks for other questions with the same title.
// It never blocks the operation; an empty string means no duplicates.
func (s *Service) questionDuplicateWarning(ctx context.Context, title, candidateSlug string, publishedOnly bool) (string, error) {
	dups, err := s.questions.FindTitleDuplicates(ctx, title, candidateSlug, publishedOnly, MaxDuplicateMatches)
	if err != nil {
		return "", fmt.Errorf("find duplicate questions: %w", err)
	}
	if len(dups) == 0 {
		return "", nil
	}

	refs := make([]string, 0, len(dups))
	for _, q := range dups {
		refs = append(refs, fmt.Sprintf("%q (%s)", q.Title, q.Slug))
	}
	scope := "questions"
	if publishedOnly {
		scope = "published questions"
	}
	return fmt.Sprintf("Possible duplicate %s with the same title: %s", scope, strings.Join(refs, ", ")), nil
}

// findTopicDuplicates returns topics in the subcategory whose name matches
// name case-insensitively.
func (s *Service) findTopicDuplicates(ctx context.Context, subcategoryID uuid.UUID, name, candidateSlug string) ([]domain.Topic, error) {
	dups, err := s.topics.FindByNameInSubcategory(ctx, subcategoryID, name, candidateSlug, MaxDuplicateMatches)
	if err != nil {
		return nil, fmt.Errorf("find duplicate topics: %w", err)
	}
	return dups, nil
}

func topicReuseWarning(name string, existing domain.Topic) string {
	return fmt.Sprintf("Topic %q already exists in this subcategory as %q; reusing it", name, existing.Slug)
}
