package user

import (
	"strings"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

const (
	MinDailyGoal = 1
	MaxDailyGoal = 100
)

// UpdateUserPreferencesInput holds a partial update of reading preferences.
// All fields are optional (nil = don't change).
type UpdateUserPreferencesInput struct {
	Theme                *domain.Theme
	ShowAnswersByDefault *bool
	DailyGoal            *int
}

// Validate validates the update preferences input.
func (i UpdateUserPreferencesInput) Validate() error {
	var errs []domain.FieldError

	if i.Theme != nil && !i.Theme.IsValid() {
		errs = append(errs, domain.FieldError{Field: "theme", Message: "must be one of system, light, dark"})
	}

	if i.DailyGoal != nil {
		if *i.DailyGoal < MinDailyGoal {
			errs = append(errs, domain.FieldError{Field: "dailyGoal", Message: "must be at least 1"})
		} else if *i.DailyGoal > MaxDailyGoal {
			errs = append(errs, domain.FieldError{Field: "dailyGoal", Message: "must be at most 100"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateAccountPreferencesInput holds a partial update of account settings.
type UpdateAccountPreferencesInput struct {
	DisplayName *string
	EmailOptIn  *bool
}

// Validate validates the update account input.
func (i UpdateAccountPreferencesInput) Validate() error {
	var errs []domain.FieldError

	if i.DisplayName != nil {
		name := strings.TrimSpace(*i.DisplayName)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "displayName", Message: "cannot be empty"})
		} else if len(name) > 100 {
			errs = append(errs, domain.FieldError{Field: "displayName", Message: "too long (max 100)"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
