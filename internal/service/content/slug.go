package content

import (
	"context"
	"fmt"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// slugExistsFunc reports whether a slug is already taken in one table.
type slugExistsFunc func(ctx context.Context, slug string) (bool, error)

// allocateSlug returns the first free candidate of base, base-2, ... base-N
// where N is domain.MaxSlugAttempts.
func allocateSlug(ctx context.Context, exists slugExistsFunc, base string) (string, error) {
	for n := 1; n <= domain.MaxSlugAttempts; n++ {
		candidate := domain.SlugCandidate(base, n)
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("slug %q: %w", base, domain.ErrSlugExhausted)
}
