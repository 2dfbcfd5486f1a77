// Package catalog implements read access to the category tree and published
// questions, plus the slug-keyed upserts used to copy published data between
// databases.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new catalog repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type categoryRow struct {
	ID          uuid.UUID `db:"id"`
	Slug        string    `db:"slug"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	SortOrder   int       `db:"sort_order"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type subcategoryRow struct {
	categoryRow
	CategoryID uuid.UUID `db:"category_id"`
}

type topicRow struct {
	ID               uuid.UUID  `db:"id"`
	Slug             string     `db:"slug"`
	Name             string     `db:"name"`
	ShortDescription string     `db:"short_description"`
	SubcategoryID    uuid.UUID  `db:"subcategory_id"`
	Status           string     `db:"status"`
	PublishedAt      *time.Time `db:"published_at"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

type publishedQuestionRow struct {
	ID             uuid.UUID  `db:"id"`
	Slug           string     `db:"slug"`
	Title          string     `db:"title"`
	Summary        string     `db:"summary"`
	PublishedAt    *time.Time `db:"published_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	AnswerMarkdown string     `db:"answer_markdown"`
	TopicSlugs     []string   `db:"topic_slugs"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetSubcategoryBySlug returns a subcategory by slug.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetSubcategoryBySlug(ctx context.Context, slug string) (*domain.Subcategory, error) {
	var row subcategoryRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT id, category_id, slug, name, description, sort_order, created_at, updated_at
		 FROM subcategories WHERE slug = $1`, slug)
	if err != nil {
		return nil, postgres.MapError(err, "subcategory", slug)
	}
	s := toDomainSubcategory(row)
	return &s, nil
}

// ListCategories returns every category ordered for display.
func (r *Repo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var rows []categoryRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT id, slug, name, description, sort_order, created_at, updated_at
		 FROM categories ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	result := make([]domain.Category, len(rows))
	for i, row := range rows {
		result[i] = toDomainCategory(row)
	}
	return result, nil
}

// ListSubcategories returns every subcategory ordered for display.
func (r *Repo) ListSubcategories(ctx context.Context) ([]domain.Subcategory, error) {
	var rows []subcategoryRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT id, category_id, slug, name, description, sort_order, created_at, updated_at
		 FROM subcategories ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}

	result := make([]domain.Subcategory, len(rows))
	for i, row := range rows {
		result[i] = toDomainSubcategory(row)
	}
	return result, nil
}

// ListTopics returns topics ordered by name; publishedOnly hides drafts.
func (r *Repo) ListTopics(ctx context.Context, publishedOnly bool) ([]domain.Topic, error) {
	qb := postgres.Builder.
		Select("id", "slug", "name", "short_description", "subcategory_id", "status", "published_at", "created_at", "updated_at").
		From("topics").
		OrderBy("name", "slug")
	if publishedOnly {
		qb = qb.Where(squirrel.Eq{"status": string(domain.ContentStatusPublished)})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build topic list query: %w", err)
	}

	var rows []topicRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	result := make([]domain.Topic, len(rows))
	for i, row := range rows {
		result[i] = toDomainTopic(row)
	}
	return result, nil
}

// ListPublishedQuestions returns published questions with their primary
// answer and published topic slugs, newest first.
func (r *Repo) ListPublishedQuestions(ctx context.Context, f domain.QuestionFilter) ([]domain.PublishedQuestion, error) {
	qb := postgres.Builder.
		Select(
			"q.id", "q.slug", "q.title", "q.summary", "q.published_at", "q.created_at", "q.updated_at",
			"coalesce(a.content_markdown, '') AS answer_markdown",
			"coalesce(array_agg(t.slug ORDER BY qt.sort_order) FILTER (WHERE t.slug IS NOT NULL), '{}') AS topic_slugs",
		).
		From("questions q").
		LeftJoin("answers a ON a.question_id = q.id AND a.is_primary").
		LeftJoin("question_topics qt ON qt.question_id = q.id").
		LeftJoin("topics t ON t.id = qt.topic_id AND t.status = 'published'").
		Where(squirrel.Eq{"q.status": string(domain.ContentStatusPublished)}).
		GroupBy("q.id", "a.content_markdown").
		OrderBy("q.published_at DESC", "q.slug")

	if f.TopicSlug != "" {
		qb = qb.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM question_topics fqt JOIN topics ft ON ft.id = fqt.topic_id WHERE fqt.question_id = q.id AND ft.slug = ?)",
			f.TopicSlug,
		))
	}
	if f.Limit > 0 {
		qb = qb.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		qb = qb.Offset(uint64(f.Offset))
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build published question query: %w", err)
	}

	var rows []publishedQuestionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list published questions: %w", err)
	}

	result := make([]domain.PublishedQuestion, len(rows))
	for i, row := range rows {
		result[i] = domain.PublishedQuestion{
			Question: domain.Question{
				ID:          row.ID,
				Slug:        row.Slug,
				Title:       row.Title,
				Summary:     row.Summary,
				Status:      domain.ContentStatusPublished,
				PublishedAt: row.PublishedAt,
				CreatedAt:   row.CreatedAt,
				UpdatedAt:   row.UpdatedAt,
			},
			AnswerMarkdown: row.AnswerMarkdown,
			TopicSlugs:     row.TopicSlugs,
		}
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Sync upserts (keyed by slug)
// ---------------------------------------------------------------------------

// UpsertCategory inserts or updates a category by slug and returns its local id.
func (r *Repo) UpsertCategory(ctx context.Context, c domain.Category) (uuid.UUID, error) {
	var id uuid.UUID
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `
INSERT INTO categories (slug, name, description, sort_order)
VALUES ($1, $2, $3, $4)
ON CONFLICT (slug) DO UPDATE
SET name = EXCLUDED.name, description = EXCLUDED.description,
    sort_order = EXCLUDED.sort_order, updated_at = now()
RETURNING id`, c.Slug, c.Name, c.Description, c.SortOrder).Scan(&id)
	if err != nil {
		return uuid.Nil, postgres.MapError(err, "category", c.Slug)
	}
	return id, nil
}

// UpsertSubcategory inserts or updates a subcategory by slug under categoryID.
func (r *Repo) UpsertSubcategory(ctx context.Context, s domain.Subcategory, categoryID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `
INSERT INTO subcategories (category_id, slug, name, description, sort_order)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (slug) DO UPDATE
SET category_id = EXCLUDED.category_id, name = EXCLUDED.name,
    description = EXCLUDED.description, sort_order = EXCLUDED.sort_order, updated_at = now()
RETURNING id`, categoryID, s.Slug, s.Name, s.Description, s.SortOrder).Scan(&id)
	if err != nil {
		return uuid.Nil, postgres.MapError(err, "subcategory", s.Slug)
	}
	return id, nil
}

// UpsertPublishedTopic inserts or updates a topic by slug as published,
// keeping an existing published_at.
func (r *Repo) UpsertPublishedTopic(ctx context.Context, t domain.Topic, subcategoryID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `
INSERT INTO topics (slug, name, short_description, subcategory_id, status, published_at)
VALUES ($1, $2, $3, $4, 'published', coalesce($5, now()))
ON CONFLICT (slug) DO UPDATE
SET name = EXCLUDED.name, short_description = EXCLUDED.short_description,
    subcategory_id = EXCLUDED.subcategory_id, status = 'published',
    published_at = coalesce(topics.published_at, EXCLUDED.published_at), updated_at = now()
RETURNING id`, t.Slug, t.Name, t.ShortDescription, subcategoryID, t.PublishedAt).Scan(&id)
	if err != nil {
		return uuid.Nil, postgres.MapError(err, "topic", t.Slug)
	}
	return id, nil
}

// UpsertPublishedQuestion copies a published question by slug. Links are only
// ever added so the target never passes through a published-without-topic
// state; the question is published last.
func (r *Repo) UpsertPublishedQuestion(ctx context.Context, q domain.PublishedQuestion, topicIDs []uuid.UUID) error {
	db := postgres.QuerierFromCtx(ctx, r.db)

	var id uuid.UUID
	err := db.QueryRow(ctx, `
INSERT INTO questions (slug, title, summary)
VALUES ($1, $2, $3)
ON CONFLICT (slug) DO UPDATE
SET title = EXCLUDED.title, summary = EXCLUDED.summary, updated_at = now()
RETURNING id`, q.Slug, q.Title, q.Summary).Scan(&id)
	if err != nil {
		return postgres.MapError(err, "question", q.Slug)
	}

	if _, err := db.Exec(ctx, `
INSERT INTO question_topics (question_id, topic_id, sort_order)
SELECT $1, t.id, t.ord * 10
FROM unnest($2::uuid[]) WITH ORDINALITY AS t(id, ord)
ON CONFLICT (question_id, topic_id) DO UPDATE SET sort_order = EXCLUDED.sort_order`, id, topicIDs); err != nil {
		return postgres.MapError(err, "question_topics", q.Slug)
	}

	if _, err := db.Exec(ctx, `
INSERT INTO answers (question_id, is_primary, status, content_markdown, published_at)
VALUES ($1, true, 'published', $2, coalesce($3, now()))
ON CONFLICT (question_id) WHERE is_primary DO UPDATE
SET content_markdown = EXCLUDED.content_markdown, status = 'published',
    published_at = coalesce(answers.published_at, EXCLUDED.published_at), updated_at = now()`,
		id, q.AnswerMarkdown, q.PublishedAt); err != nil {
		return postgres.MapError(err, "primary answer", q.Slug)
	}

	if _, err := db.Exec(ctx, `
UPDATE questions
SET status = 'published', published_at = coalesce(published_at, $2, now()), updated_at = now()
WHERE id = $1`, id, q.PublishedAt); err != nil {
		return postgres.MapError(err, "question", q.Slug)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func toDomainCategory(row categoryRow) domain.Category {
	return domain.Category{
		ID:          row.ID,
		Slug:        row.Slug,
		Name:        row.Name,
		Description: row.Description,
		SortOrder:   row.SortOrder,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toDomainSubcategory(row subcategoryRow) domain.Subcategory {
	return domain.Subcategory{
		ID:          row.ID,
		CategoryID:  row.CategoryID,
		Slug:        row.Slug,
		Name:        row.Name,
		Description: row.Description,
		SortOrder:   row.SortOrder,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toDomainTopic(row topicRow) domain.Topic {
	return domain.Topic{
		ID:               row.ID,
		Slug:             row.Slug,
		Name:             row.Name,
		ShortDescription: row.ShortDescription,
		SubcategoryID:    row.SubcategoryID,
		Status:           domain.ContentStatus(row.Status),
		PublishedAt:      row.PublishedAt,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}
