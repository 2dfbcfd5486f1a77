package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Email        string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuthContext is the resolved identity of the caller of a service operation.
type AuthContext struct {
	UserID uuid.UUID
	Role   UserRole
}

// IsAnonymous reports whether no user was resolved.
func (a AuthContext) IsAnonymous() bool {
	return a.UserID == uuid.Nil
}

// CanEditContent reports whether the caller may use the admin composer.
func (a AuthContext) CanEditContent() bool {
	return a.UserID != uuid.Nil && a.Role.CanEditContent()
}

// AccountPreferences holds account-level settings shown on the account page.
type AccountPreferences struct {
	UserID      uuid.UUID
	DisplayName string
	EmailOptIn  bool
	UpdatedAt   time.Time
}

// UserPreferences holds per-user study and display preferences.
type UserPreferences struct {
	UserID               uuid.UUID
	Theme                Theme
	ShowAnswersByDefault bool
	DailyGoal            int
	UpdatedAt            time.Time
}

// DefaultUserPreferences returns UserPreferences with sensible defaults.
func DefaultUserPreferences(userID uuid.UUID) UserPreferences {
	return UserPreferences{
		UserID:    userID,
		Theme:     ThemeSystem,
		DailyGoal: 5,
	}
}

// Playlist is a user-curated ordered list of questions.
type Playlist struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Items       []PlaylistItem
}

// PlaylistItem is a question inside a playlist.
type PlaylistItem struct {
	QuestionID    uuid.UUID
	QuestionSlug  string
	QuestionTitle string
	SortOrder     int
	AddedAt       time.Time
}

// QuestionProgress is a user's progress on a single question.
type QuestionProgress struct {
	UserID       uuid.UUID
	QuestionID   uuid.UUID
	QuestionSlug string
	Status       ProgressStatus
	UpdatedAt    time.Time
}
