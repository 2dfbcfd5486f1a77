package domain

// ContentStatus is the two-state lifecycle shared by questions, topics and answers.
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
)

func (s ContentStatus) String() string { return string(s) }

func (s ContentStatus) IsValid() bool {
	switch s {
	case ContentStatusDraft, ContentStatusPublished:
		return true
	}
	return false
}

func (s ContentStatus) IsPublished() bool {
	return s == ContentStatusPublished
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleMember UserRole = "member"
	UserRoleEditor UserRole = "editor"
	UserRoleAdmin  UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleMember, UserRoleEditor, UserRoleAdmin:
		return true
	}
	return false
}

// CanEditContent reports whether the role may use the admin composer.
func (r UserRole) CanEditContent() bool {
	return r == UserRoleAdmin || r == UserRoleEditor
}

// ProgressStatus tracks how far a user has got with a question.
type ProgressStatus string

const (
	ProgressStatusNotStarted ProgressStatus = "not_started"
	ProgressStatusInProgress ProgressStatus = "in_progress"
	ProgressStatusMastered   ProgressStatus = "mastered"
)

func (s ProgressStatus) String() string { return string(s) }

func (s ProgressStatus) IsValid() bool {
	switch s {
	case ProgressStatusNotStarted, ProgressStatusInProgress, ProgressStatusMastered:
		return true
	}
	return false
}

// Theme is the UI color scheme preference.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

func (t Theme) String() string { return string(t) }

func (t Theme) IsValid() bool {
	switch t {
	case ThemeSystem, ThemeLight, ThemeDark:
		return true
	}
	return false
}
