// Package answer implements the Answer repository using PostgreSQL.
// Only the primary answer of a question is managed here; the partial unique
// index answers_one_primary_idx guarantees there is at most one.
package answer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// Repo provides answer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new answer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const answerColumns = `id, question_id, is_primary, status, content_markdown, published_at, created_at, updated_at`

const (
	getPrimarySQL = `SELECT ` + answerColumns + ` FROM answers WHERE question_id = $1 AND is_primary`

	getPrimaryForUpdateSQL = getPrimarySQL + ` FOR UPDATE`

	insertPrimarySQL = `
INSERT INTO answers (question_id, is_primary, status, content_markdown)
VALUES ($1, true, 'draft', $2)
RETURNING ` + answerColumns

	updateDraftSQL = `
UPDATE answers
SET content_markdown = $2, status = 'draft', published_at = NULL, updated_at = now()
WHERE id = $1
RETURNING ` + answerColumns

	publishPrimarySQL = `
UPDATE answers
SET status = 'published', published_at = now(), updated_at = now()
WHERE question_id = $1 AND is_primary AND status <> 'published'`

	demotePrimarySQL = `
UPDATE answers
SET status = 'draft', published_at = NULL, updated_at = now()
WHERE question_id = $1 AND is_primary AND status <> 'draft'`
)

// GetPrimary returns the primary answer of a question.
// Returns domain.ErrNotFound when the question has none.
func (r *Repo) GetPrimary(ctx context.Context, questionID uuid.UUID) (*domain.Answer, error) {
	a, err := scanAnswer(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getPrimarySQL, questionID))
	if err != nil {
		return nil, postgres.MapError(err, "primary answer", questionID.String())
	}
	return a, nil
}

// GetPrimaryForUpdate is GetPrimary with a row lock.
func (r *Repo) GetPrimaryForUpdate(ctx context.Context, questionID uuid.UUID) (*domain.Answer, error) {
	a, err := scanAnswer(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getPrimaryForUpdateSQL, questionID))
	if err != nil {
		return nil, postgres.MapError(err, "primary answer", questionID.String())
	}
	return a, nil
}

// CreatePrimary inserts a draft primary answer.
// Returns domain.ErrAlreadyExists if the question already has one.
func (r *Repo) CreatePrimary(ctx context.Context, questionID uuid.UUID, markdown string) (*domain.Answer, error) {
	a, err := scanAnswer(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertPrimarySQL, questionID, markdown))
	if err != nil {
		return nil, postgres.MapError(err, "primary answer", questionID.String())
	}
	return a, nil
}

// UpdateDraft replaces the markdown and returns the answer to draft.
func (r *Repo) UpdateDraft(ctx context.Context, id uuid.UUID, markdown string) (*domain.Answer, error) {
	a, err := scanAnswer(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateDraftSQL, id, markdown))
	if err != nil {
		return nil, postgres.MapError(err, "answer", id.String())
	}
	return a, nil
}

// PublishPrimary publishes the primary answer unless it already is.
// It reports whether a row changed.
func (r *Repo) PublishPrimary(ctx context.Context, questionID uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, publishPrimarySQL, questionID)
	if err != nil {
		return false, fmt.Errorf("publish primary answer %s: %w", questionID, err)
	}
	return tag.RowsAffected() > 0, nil
}

// DemotePrimary returns the primary answer to draft.
func (r *Repo) DemotePrimary(ctx context.Context, questionID uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, demotePrimarySQL, questionID)
	if err != nil {
		return false, fmt.Errorf("demote primary answer %s: %w", questionID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanAnswer(row pgx.Row) (*domain.Answer, error) {
	var (
		a      domain.Answer
		status string
	)
	if err := row.Scan(&a.ID, &a.QuestionID, &a.IsPrimary, &status, &a.ContentMarkdown,
		&a.PublishedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Status = domain.ContentStatus(status)
	return &a, nil
}
