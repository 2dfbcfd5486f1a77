// Package question implements the Question repository using PostgreSQL.
// It owns the questions table and the question_topics join table.
package question

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// Repo provides question persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new question repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const questionColumns = `id, slug, title, summary, status, published_at, created_at, updated_at`

const (
	getBySlugSQL = `SELECT ` + questionColumns + ` FROM questions WHERE slug = $1`

	getBySlugForUpdateSQL = getBySlugSQL + ` FOR UPDATE`

	slugExistsSQL = `SELECT EXISTS(SELECT 1 FROM questions WHERE slug = $1)`

	insertSQL = `
INSERT INTO questions (slug, title, summary, status)
VALUES ($1, $2, $3, 'draft')
RETURNING ` + questionColumns

	updateDraftSQL = `
UPDATE questions
SET title = $2, summary = $3, status = 'draft', published_at = NULL, updated_at = now()
WHERE id = $1
RETURNING ` + questionColumns

	publishSQL = `
UPDATE questions
SET status = 'published', published_at = now(), updated_at = now()
WHERE id = $1 AND status <> 'published'`

	demoteSQL = `
UPDATE questions
SET status = 'draft', published_at = NULL, updated_at = now()
WHERE id = $1 AND status <> 'draft'`

	deleteSQL = `DELETE FROM questions WHERE id = $1`

	countLinksSQL = `SELECT count(*) FROM question_topics WHERE question_id = $1`

	deleteLinksSQL = `DELETE FROM question_topics WHERE question_id = $1`

	insertLinksSQL = `
INSERT INTO question_topics (question_id, topic_id, sort_order)
SELECT $1, t.id, t.ord * 10
FROM unnest($2::uuid[]) WITH ORDINALITY AS t(id, ord)`

	unlinkTopicSQL = `DELETE FROM question_topics WHERE question_id = $1 AND topic_id = $2`

	topicLabelsSQL = `
SELECT t.id, t.slug, t.name, s.slug, s.name, c.slug, c.name
FROM question_topics qt
JOIN topics t ON t.id = qt.topic_id
JOIN subcategories s ON s.id = t.subcategory_id
JOIN categories c ON c.id = s.category_id
WHERE qt.question_id = $1
ORDER BY qt.sort_order, t.slug`
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetBySlug returns a question by slug.
// Returns domain.ErrNotFound if no question has that slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Question, error) {
	q, err := scanQuestion(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getBySlugSQL, slug))
	if err != nil {
		return nil, postgres.MapError(err, "question", slug)
	}
	return q, nil
}

// GetBySlugForUpdate is GetBySlug with a row lock held until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Repo) GetBySlugForUpdate(ctx context.Context, slug string) (*domain.Question, error) {
	q, err := scanQuestion(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, getBySlugForUpdateSQL, slug))
	if err != nil {
		return nil, postgres.MapError(err, "question", slug)
	}
	return q, nil
}

// SlugExists reports whether any question (draft or published) uses slug.
func (r *Repo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, slugExistsSQL, slug).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "question", slug)
	}
	return exists, nil
}

// FindTitleDuplicates returns up to limit questions whose title matches title
// case-insensitively, skipping excludeSlug. With publishedOnly only published
// questions are considered.
func (r *Repo) FindTitleDuplicates(ctx context.Context, title, excludeSlug string, publishedOnly bool, limit int) ([]domain.Question, error) {
	qb := postgres.Builder.
		Select(questionColumns).
		From("questions").
		Where(postgres.NormalizedEq("title", title)).
		OrderBy("created_at", "slug").
		Limit(uint64(limit))
	if excludeSlug != "" {
		qb = qb.Where(squirrel.NotEq{"slug": excludeSlug})
	}
	if publishedOnly {
		qb = qb.Where(squirrel.Eq{"status": string(domain.ContentStatusPublished)})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build duplicate query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find question duplicates: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Question, 0)
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("find question duplicates: %w", err)
		}
		result = append(result, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find question duplicates: %w", err)
	}
	return result, nil
}

// CountLinks returns the number of topics linked to a question.
func (r *Repo) CountLinks(ctx context.Context, questionID uuid.UUID) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countLinksSQL, questionID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "question_topics", questionID.String())
	}
	return n, nil
}

// ListTopicLabels returns the linked topics of a question with their catalog
// parents, in link order. Returns an empty slice when nothing is linked.
func (r *Repo) ListTopicLabels(ctx context.Context, questionID uuid.UUID) ([]domain.TopicLabel, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, topicLabelsSQL, questionID)
	if err != nil {
		return nil, fmt.Errorf("list topic labels: %w", err)
	}
	defer rows.Close()

	labels := make([]domain.TopicLabel, 0)
	for rows.Next() {
		var l domain.TopicLabel
		if err := rows.Scan(&l.TopicID, &l.TopicSlug, &l.TopicName,
			&l.SubcategorySlug, &l.SubcategoryName, &l.CategorySlug, &l.CategoryName); err != nil {
			return nil, fmt.Errorf("list topic labels: %w", err)
		}
		labels = append(labels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list topic labels: %w", err)
	}
	return labels, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new draft question.
// Returns domain.ErrAlreadyExists if the slug is taken.
func (r *Repo) Create(ctx context.Context, slug, title, summary string) (*domain.Question, error) {
	q, err := scanQuestion(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertSQL, slug, title, summary))
	if err != nil {
		return nil, postgres.MapError(err, "question", slug)
	}
	return q, nil
}

// UpdateDraft overwrites title and summary and returns the question to draft.
func (r *Repo) UpdateDraft(ctx context.Context, id uuid.UUID, title, summary string) (*domain.Question, error) {
	q, err := scanQuestion(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, updateDraftSQL, id, title, summary))
	if err != nil {
		return nil, postgres.MapError(err, "question", id.String())
	}
	return q, nil
}

// Publish flips a draft question to published and stamps published_at.
// It reports false when the question was already published.
// Returns *domain.GuardrailError when the question has no topic link.
func (r *Repo) Publish(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, publishSQL, id)
	if err != nil {
		return false, postgres.MapError(err, "question", id.String())
	}
	return tag.RowsAffected() > 0, nil
}

// Demote returns a question to draft and clears published_at.
// It reports false when the question was already a draft.
func (r *Repo) Demote(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, demoteSQL, id)
	if err != nil {
		return false, postgres.MapError(err, "question", id.String())
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a question; its links and answers cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "question", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ReplaceLinks deletes every topic link of a question and inserts topicIDs in
// order with sort_order 10, 20, 30... (see domain.SortOrderForIndex).
func (r *Repo) ReplaceLinks(ctx context.Context, questionID uuid.UUID, topicIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, deleteLinksSQL, questionID); err != nil {
		return postgres.MapError(err, "question_topics", questionID.String())
	}
	if len(topicIDs) == 0 {
		return nil
	}

	if _, err := q.Exec(ctx, insertLinksSQL, questionID, topicIDs); err != nil {
		return postgres.MapError(err, "question_topics", questionID.String())
	}
	return nil
}

// UnlinkTopic removes a single link.
// Returns *domain.GuardrailError when it is the last link of a published question.
func (r *Repo) UnlinkTopic(ctx context.Context, questionID, topicID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, unlinkTopicSQL, questionID, topicID)
	if err != nil {
		return postgres.MapError(err, "question_topics", questionID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("question_topics %s/%s: %w", questionID, topicID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanQuestion(row pgx.Row) (*domain.Question, error) {
	var (
		q      domain.Question
		status string
	)
	if err := row.Scan(&q.ID, &q.Slug, &q.Title, &q.Summary, &status, &q.PublishedAt, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return nil, err
	}
	q.Status = domain.ContentStatus(status)
	return &q, nil
}
