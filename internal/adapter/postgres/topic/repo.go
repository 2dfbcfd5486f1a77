// Package topic implements the Topic repository using PostgreSQL.
package topic

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const topicColumns = `id, slug, name, short_description, subcategory_id, status, published_at, created_at, updated_at`

const (
	getBySlugsSQL = `SELECT ` + topicColumns + ` FROM topics WHERE slug = ANY($1::text[])`

	slugExistsSQL = `SELECT EXISTS(SELECT 1 FROM topics WHERE slug = $1)`

	insertSQL = `
INSERT INTO topics (slug, name, short_description, subcategory_id, status, published_at)
VALUES ($1, $2, $3, $4, $5, CASE WHEN $6::boolean THEN now() END)
RETURNING ` + topicColumns

	publishForQuestionSQL = `
UPDATE topics
SET status = 'published', published_at = now(), updated_at = now()
WHERE id IN (SELECT topic_id FROM question_topics WHERE question_id = $1)
  AND status <> 'published'
RETURNING slug`

	deleteSQL = `DELETE FROM topics WHERE id = $1`
)

// GetBySlugs returns the topics with the given slugs in no particular order.
// Unknown slugs are simply absent from the result.
func (r *Repo) GetBySlugs(ctx context.Context, slugs []string) ([]domain.Topic, error) {
	if len(slugs) == 0 {
		return []domain.Topic{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, getBySlugsSQL, slugs)
	if err != nil {
		return nil, fmt.Errorf("get topics by slugs: %w", err)
	}
	defer rows.Close()

	return collectTopics(rows)
}

// SlugExists reports whether any topic uses slug.
func (r *Repo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, slugExistsSQL, slug).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "topic", slug)
	}
	return exists, nil
}

// FindByNameInSubcategory returns up to limit topics of the subcategory whose
// name matches case-insensitively, skipping excludeSlug.
func (r *Repo) FindByNameInSubcategory(ctx context.Context, subcategoryID uuid.UUID, name, excludeSlug string, limit int) ([]domain.Topic, error) {
	qb := postgres.Builder.
		Select(topicColumns).
		From("topics").
		Where(squirrel.Eq{"subcategory_id": subcategoryID}).
		Where(postgres.NormalizedEq("name", name)).
		OrderBy("created_at", "slug").
		Limit(uint64(limit))
	if excludeSlug != "" {
		qb = qb.Where(squirrel.NotEq{"slug": excludeSlug})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build topic duplicate query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find topic duplicates: %w", err)
	}
	defer rows.Close()

	return collectTopics(rows)
}

// Create inserts a topic. When t.Status is published, published_at is stamped.
// Returns domain.ErrAlreadyExists if the slug is taken.
func (r *Repo) Create(ctx context.Context, t domain.Topic) (*domain.Topic, error) {
	status := t.Status
	if status == "" {
		status = domain.ContentStatusDraft
	}

	row := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, insertSQL,
		t.Slug, t.Name, t.ShortDescription, t.SubcategoryID, string(status), status.IsPublished())

	created, err := scanTopic(row)
	if err != nil {
		return nil, postgres.MapError(err, "topic", t.Slug)
	}
	return created, nil
}

// PublishForQuestion publishes every topic linked to the question that is not
// published yet and returns their slugs. Already published topics keep their
// published_at.
func (r *Repo) PublishForQuestion(ctx context.Context, questionID uuid.UUID) ([]string, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, publishForQuestionSQL, questionID)
	if err != nil {
		return nil, fmt.Errorf("publish topics for question %s: %w", questionID, err)
	}

	slugs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("publish topics for question %s: %w", questionID, err)
	}
	if slugs == nil {
		slugs = []string{}
	}
	return slugs, nil
}

// Delete removes a topic and, through the cascade, its question links.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "topic", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func collectTopics(rows pgx.Rows) ([]domain.Topic, error) {
	result := make([]domain.Topic, 0)
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanTopic(row pgx.Row) (*domain.Topic, error) {
	var (
		t      domain.Topic
		status string
	)
	if err := row.Scan(&t.ID, &t.Slug, &t.Name, &t.ShortDescription, &t.SubcategoryID,
		&status, &t.PublishedAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.Status = domain.ContentStatus(status)
	return &t, nil
}
