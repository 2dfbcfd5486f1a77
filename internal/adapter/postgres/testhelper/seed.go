package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueSlug returns prefix joined with a random suffix, valid as a slug.
func UniqueSlug(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// SeedUser creates a user with the given role and no password.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	return SeedUserWithPassword(t, pool, role, "")
}

// SeedUserWithPassword creates a user whose password_hash is set verbatim.
func SeedUserWithPassword(t *testing.T, pool *pgxpool.Pool, role domain.UserRole, passwordHash string) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		DisplayName:  "Test User " + suffix,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var hash *string
	if passwordHash != "" {
		hash = &passwordHash
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, display_name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, hash, user.DisplayName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	if role != "" {
		_, err = pool.Exec(ctx, `INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`, user.ID, string(role))
		if err != nil {
			t.Fatalf("testhelper: SeedUser insert role: %v", err)
		}
	}

	return user
}

// SeedCategory inserts a category with a unique slug.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	c := domain.Category{
		ID:   uuid.New(),
		Slug: UniqueSlug("cat"),
		Name: "Category " + uniqueSuffix(),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO categories (id, slug, name) VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at`,
		c.ID, c.Slug, c.Name,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return c
}

// SeedSubcategory inserts a subcategory under a fresh category.
func SeedSubcategory(t *testing.T, pool *pgxpool.Pool) domain.Subcategory {
	t.Helper()

	cat := SeedCategory(t, pool)
	s := domain.Subcategory{
		ID:         uuid.New(),
		CategoryID: cat.ID,
		Slug:       UniqueSlug("sub"),
		Name:       "Subcategory " + uniqueSuffix(),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO subcategories (id, category_id, slug, name) VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		s.ID, s.CategoryID, s.Slug, s.Name,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSubcategory: %v", err)
	}
	return s
}

// SeedTopic inserts a topic in the given subcategory with the given status.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, subcategoryID uuid.UUID, status domain.ContentStatus) domain.Topic {
	t.Helper()

	tp := domain.Topic{
		ID:               uuid.New(),
		Slug:             UniqueSlug("topic"),
		Name:             "Topic " + uniqueSuffix(),
		ShortDescription: "seeded topic",
		SubcategoryID:    subcategoryID,
		Status:           status,
	}
	if status.IsPublished() {
		now := time.Now().UTC().Truncate(time.Microsecond)
		tp.PublishedAt = &now
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO topics (id, slug, name, short_description, subcategory_id, status, published_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		tp.ID, tp.Slug, tp.Name, tp.ShortDescription, tp.SubcategoryID, string(tp.Status), tp.PublishedAt,
	).Scan(&tp.CreatedAt, &tp.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}
	return tp
}

// SeedDraftQuestion inserts a draft question linked to the given topics, with
// a draft primary answer.
func SeedDraftQuestion(t *testing.T, pool *pgxpool.Pool, topicIDs ...uuid.UUID) domain.Question {
	t.Helper()
	ctx := context.Background()

	q := domain.Question{
		ID:     uuid.New(),
		Slug:   UniqueSlug("question"),
		Title:  "Question " + uniqueSuffix(),
		Status: domain.ContentStatusDraft,
	}
	err := pool.QueryRow(ctx,
		`INSERT INTO questions (id, slug, title, summary) VALUES ($1, $2, $3, '')
		 RETURNING created_at, updated_at`,
		q.ID, q.Slug, q.Title,
	).Scan(&q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDraftQuestion insert question: %v", err)
	}

	for i, topicID := range topicIDs {
		_, err := pool.Exec(ctx,
			`INSERT INTO question_topics (question_id, topic_id, sort_order) VALUES ($1, $2, $3)`,
			q.ID, topicID, domain.SortOrderForIndex(i),
		)
		if err != nil {
			t.Fatalf("testhelper: SeedDraftQuestion link topic: %v", err)
		}
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO answers (question_id, is_primary, content_markdown) VALUES ($1, true, 'seeded answer')`,
		q.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDraftQuestion insert answer: %v", err)
	}

	return q
}

// QuestionStatus reads the current status of a question by slug.
func QuestionStatus(t *testing.T, pool *pgxpool.Pool, slug string) domain.ContentStatus {
	t.Helper()

	var status string
	err := pool.QueryRow(context.Background(), `SELECT status FROM questions WHERE slug = $1`, slug).Scan(&status)
	if err != nil {
		t.Fatalf("testhelper: QuestionStatus %s: %v", slug, err)
	}
	return domain.ContentStatus(status)
}
