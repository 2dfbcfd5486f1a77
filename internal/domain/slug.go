package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxSlugAttempts bounds the suffix probing of the slug allocator.
const MaxSlugAttempts = 200

// DefaultSlugFallback is used when free text yields no slug characters.
const DefaultSlugFallback = "untitled"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Slugify converts free text into a URL-safe slug: lowercase ASCII letters and
// digits separated by single hyphens. Any run of other characters becomes one
// hyphen; leading and trailing hyphens are dropped. Returns fallback when
// nothing is left.
//
//	Slugify("Hello World", "untitled")        // "hello-world"
//	Slugify("What is a closure?", "untitled") // "what-is-a-closure"
//	Slugify("!!!", "untitled")                // "untitled"
func Slugify(text, fallback string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingHyphen := false
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	if b.Len() == 0 {
		return fallback
	}
	return b.String()
}

// IsValidSlug reports whether s matches the canonical slug pattern.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// ValidateSlug returns a ValidationError for field when s is not a valid slug.
func ValidateSlug(field, s string) error {
	if s == "" {
		return NewValidationError(field, "required")
	}
	if !IsValidSlug(s) {
		return NewValidationError(field, "must match ^[a-z0-9]+(-[a-z0-9]+)*$")
	}
	return nil
}

// SlugCandidate returns the n-th candidate for base: base itself for n <= 1,
// otherwise base-n.
func SlugCandidate(base string, n int) string {
	if n <= 1 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}
