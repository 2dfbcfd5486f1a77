// Package user implements the User repository using PostgreSQL: accounts,
// roles and both preference tables.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const userColumns = `id, email, password_hash, display_name, created_at, updated_at`

// Roles are ranked so the highest grant wins when a user has several.
const getRoleSQL = `
SELECT role FROM user_roles WHERE user_id = $1
ORDER BY CASE role WHEN 'admin' THEN 0 WHEN 'editor' THEN 1 ELSE 2 END
LIMIT 1`

// ---------------------------------------------------------------------------
// Users and roles
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return u, nil
}

// GetByEmail returns a user by email, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// Create inserts a user. Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, email, displayName, passwordHash string) (*domain.User, error) {
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `
INSERT INTO users (email, display_name, password_hash)
VALUES ($1, $2, $3)
RETURNING `+userColumns, strings.ToLower(email), displayName, stringToPgText(passwordHash)))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// GetRole returns the highest role granted to the user, or member when the
// user has no explicit grant.
func (r *Repo) GetRole(ctx context.Context, userID uuid.UUID) (domain.UserRole, error) {
	var role string
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getRoleSQL, userID).Scan(&role)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.UserRoleMember, nil
	}
	if err != nil {
		return "", postgres.MapError(err, "user_roles", userID.String())
	}
	return domain.UserRole(role), nil
}

// GrantRole adds a role to the user. Granting an existing role is a no-op.
func (r *Repo) GrantRole(ctx context.Context, userID uuid.UUID, role domain.UserRole) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, string(role))
	if err != nil {
		return postgres.MapError(err, "user_roles", userID.String())
	}
	return nil
}

// ---------------------------------------------------------------------------
// Preferences
// ---------------------------------------------------------------------------

// GetUserPreferences returns stored preferences.
// Returns domain.ErrNotFound when the user never saved any.
func (r *Repo) GetUserPreferences(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error) {
	var (
		p     domain.UserPreferences
		theme string
	)
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `
SELECT user_id, theme, show_answers_by_default, daily_goal, updated_at
FROM user_preferences WHERE user_id = $1`, userID).
		Scan(&p.UserID, &theme, &p.ShowAnswersByDefault, &p.DailyGoal, &p.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user_preferences", userID.String())
	}
	p.Theme = domain.Theme(theme)
	return &p, nil
}

// UpsertUserPreferences stores preferences and returns the saved row.
func (r *Repo) UpsertUserPreferences(ctx context.Context, p domain.UserPreferences) (*domain.UserPreferences, error) {
	var theme string
	saved := domain.UserPreferences{}
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `
INSERT INTO user_preferences (user_id, theme, show_answers_by_default, daily_goal)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE
SET theme = EXCLUDED.theme, show_answers_by_default = EXCLUDED.show_answers_by_default,
    daily_goal = EXCLUDED.daily_goal, updated_at = now()
RETURNING user_id, theme, show_answers_by_default, daily_goal, updated_at`,
		p.UserID, string(p.Theme), p.ShowAnswersByDefault, p.DailyGoal).
		Scan(&saved.UserID, &theme, &saved.ShowAnswersByDefault, &saved.DailyGoal, &saved.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user_preferences", p.UserID.String())
	}
	saved.Theme = domain.Theme(theme)
	return &saved, nil
}

// GetAccountPreferences returns stored account preferences.
// Returns domain.ErrNotFound when the user never saved any.
func (r *Repo) GetAccountPreferences(ctx context.Context, userID uuid.UUID) (*domain.AccountPreferences, error) {
	var p domain.AccountPreferences
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `
SELECT user_id, display_name, email_opt_in, updated_at
FROM account_preferences WHERE user_id = $1`, userID).
		Scan(&p.UserID, &p.DisplayName, &p.EmailOptIn, &p.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "account_preferences", userID.String())
	}
	return &p, nil
}

// UpsertAccountPreferences stores account preferences and mirrors the display
// name onto the user row.
func (r *Repo) UpsertAccountPreferences(ctx context.Context, p domain.AccountPreferences) (*domain.AccountPreferences, error) {
	db := postgres.QuerierFromCtx(ctx, r.db)

	var saved domain.AccountPreferences
	err := db.QueryRow(ctx, `
INSERT INTO account_preferences (user_id, display_name, email_opt_in)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE
SET display_name = EXCLUDED.display_name, email_opt_in = EXCLUDED.email_opt_in, updated_at = now()
RETURNING user_id, display_name, email_opt_in, updated_at`,
		p.UserID, p.DisplayName, p.EmailOptIn).
		Scan(&saved.UserID, &saved.DisplayName, &saved.EmailOptIn, &saved.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "account_preferences", p.UserID.String())
	}

	if _, err := db.Exec(ctx,
		`UPDATE users SET display_name = $2, updated_at = now() WHERE id = $1`,
		p.UserID, p.DisplayName); err != nil {
		return nil, fmt.Errorf("sync display name: %w", err)
	}
	return &saved, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		hash pgtype.Text
	)
	if err := row.Scan(&u.ID, &u.Email, &hash, &u.DisplayName, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.PasswordHash = pgTextToString(hash)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}

func pgTextToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

func stringToPgText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
