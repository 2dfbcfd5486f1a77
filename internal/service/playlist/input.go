package playlist

import (
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// CreatePlaylistInput holds parameters for creating a playlist.
type CreatePlaylistInput struct {
	Name        string
	Description *string
}

func (i CreatePlaylistInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long (max 100)"})
	}

	if i.Description != nil && len(*i.Description) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 500)"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ItemInput identifies a question inside a playlist.
type ItemInput struct {
	PlaylistID   uuid.UUID
	QuestionSlug string
}

func (i ItemInput) Validate() error {
	var errs []domain.FieldError

	if i.PlaylistID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "playlistId", Message: "required"})
	}
	if !domain.IsValidSlug(i.QuestionSlug) {
		errs = append(errs, domain.FieldError{Field: "questionSlug", Message: "invalid slug"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
