package compose

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
	"github.com/heartmarshall/interviewprep-backend/internal/service/content"
)

// QuestionDraft is the part of the composer form every helper reads.
type QuestionDraft struct {
	Title          string
	Summary        string
	AnswerMarkdown string
}

func (d QuestionDraft) validate() []domain.FieldError {
	var errs []domain.FieldError

	title := strings.TrimSpace(d.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > content.MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("too long (max %d)", content.MaxTitleLength)})
	}
	if len(d.Summary) > content.MaxSummaryLength {
		errs = append(errs, domain.FieldError{Field: "summary", Message: fmt.Sprintf("too long (max %d)", content.MaxSummaryLength)})
	}
	if len(d.AnswerMarkdown) > content.MaxAnswerLength {
		errs = append(errs, domain.FieldError{Field: "answerMarkdown", Message: fmt.Sprintf("too long (max %d)", content.MaxAnswerLength)})
	}
	return errs
}

type SuggestTopicsInput struct {
	QuestionDraft
}

func (i SuggestTopicsInput) Validate() error {
	if errs := i.validate(); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

type ResolveTemplateInput struct {
	QuestionDraft
}

func (i ResolveTemplateInput) Validate() error {
	if errs := i.validate(); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

type GenerateAnswerInput struct {
	QuestionDraft
	TemplateKey string
	TopicSlugs  []string
}

func (i GenerateAnswerInput) Validate() error {
	errs := i.validate()
	if i.TemplateKey != "" {
		if _, ok := templateByKey(i.TemplateKey); !ok {
			errs = append(errs, domain.FieldError{Field: "template", Message: "unknown template"})
		}
	}
	for idx, slug := range i.TopicSlugs {
		if !domain.IsValidSlug(slug) {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("topicSlugs[%d]", idx), Message: "invalid slug"})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
