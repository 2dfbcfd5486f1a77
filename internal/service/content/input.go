package content

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// CreateTopicInput
// ---------------------------------------------------------------------------

// CreateTopicInput describes a topic to create inline during a draft save or
// through the standalone topic endpoint.
type CreateTopicInput struct {
	Name             string
	ShortDescription string
	SubcategorySlug  string
	Slug             string // optional; derived from Name when empty
	Publish          bool
}

// Validate checks all fields and collects all errors. prefix is prepended to
// field names so nested errors point at the right place.
func (i CreateTopicInput) Validate(prefix string) []domain.FieldError {
	var errs []domain.FieldError
	field := func(name string) string { return prefix + name }

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: field("name"), Message: "required"})
	} else if len(name) > MaxTopicNameLength {
		errs = append(errs, domain.FieldError{Field: field("name"), Message: fmt.Sprintf("too long (max %d)", MaxTopicNameLength)})
	}

	desc := strings.TrimSpace(i.ShortDescription)
	if desc == "" {
		errs = append(errs, domain.FieldError{Field: field("shortDescription"), Message: "required"})
	} else if len(desc) > MaxTopicDescLength {
		errs = append(errs, domain.FieldError{Field: field("shortDescription"), Message: fmt.Sprintf("too long (max %d)", MaxTopicDescLength)})
	}

	if i.SubcategorySlug == "" {
		errs = append(errs, domain.FieldError{Field: field("subcategorySlug"), Message: "required"})
	} else if !domain.IsValidSlug(i.SubcategorySlug) {
		errs = append(errs, domain.FieldError{Field: field("subcategorySlug"), Message: "invalid slug"})
	}

	if i.Slug != "" && !domain.IsValidSlug(i.Slug) {
		errs = append(errs, domain.FieldError{Field: field("slug"), Message: "invalid slug"})
	}

	return errs
}

// ---------------------------------------------------------------------------
// SaveDraftInput
// ---------------------------------------------------------------------------

// SaveDraftInput holds a full content package: question, primary answer and
// the topics it should be linked to.
type SaveDraftInput struct {
	Title              string
	Summary            string
	AnswerMarkdown     string
	QuestionSlug       string // optional custom slug; used verbatim
	ExistingTopicSlugs []string
	CreateTopic        *CreateTopicInput

	// AllowDemote lets a save overwrite a published question, which moves it
	// (and its primary answer) back to draft.
	AllowDemote bool
}

// Validate checks all fields and collects all errors.
func (i SaveDraftInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("too long (max %d)", MaxTitleLength)})
	}

	if len(i.Summary) > MaxSummaryLength {
		errs = append(errs, domain.FieldError{Field: "summary", Message: fmt.Sprintf("too long (max %d)", MaxSummaryLength)})
	}

	if strings.TrimSpace(i.AnswerMarkdown) == "" {
		errs = append(errs, domain.FieldError{Field: "answerMarkdown", Message: "required"})
	} else if len(i.AnswerMarkdown) > MaxAnswerLength {
		errs = append(errs, domain.FieldError{Field: "answerMarkdown", Message: fmt.Sprintf("too long (max %d)", MaxAnswerLength)})
	}

	if i.QuestionSlug != "" && !domain.IsValidSlug(i.QuestionSlug) {
		errs = append(errs, domain.FieldError{Field: "questionSlug", Message: "invalid slug"})
	}

	if len(i.ExistingTopicSlugs) > MaxTopicSlugsPerSave {
		errs = append(errs, domain.FieldError{Field: "existingTopicSlugs", Message: fmt.Sprintf("too many (max %d)", MaxTopicSlugsPerSave)})
	}
	for idx, slug := range i.ExistingTopicSlugs {
		if !domain.IsValidSlug(slug) {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("existingTopicSlugs[%d]", idx),
				Message: "invalid slug",
			})
		}
	}

	if i.CreateTopic != nil {
		errs = append(errs, i.CreateTopic.Validate("createTopic.")...)
	} else if len(i.ExistingTopicSlugs) == 0 {
		errs = append(errs, domain.FieldError{Field: "existingTopicSlugs", Message: "at least one topic required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ---------------------------------------------------------------------------
// PublishInput / UnpublishInput
// ---------------------------------------------------------------------------

// PublishInput identifies the question to publish.
type PublishInput struct {
	QuestionSlug string
}

// Validate checks all fields.
func (i PublishInput) Validate() error {
	if err := domain.ValidateSlug("questionSlug", i.QuestionSlug); err != nil {
		return err
	}
	return nil
}

// UnpublishInput identifies the question to move back to draft.
type UnpublishInput struct {
	QuestionSlug string
}

// Validate checks all fields.
func (i UnpublishInput) Validate() error {
	if err := domain.ValidateSlug("questionSlug", i.QuestionSlug); err != nil {
		return err
	}
	return nil
}

// ValidateStandalone validates a topic created outside a draft save.
func (i CreateTopicInput) ValidateStandalone() error {
	if errs := i.Validate(""); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
