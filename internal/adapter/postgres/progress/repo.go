// Package progress implements per-user question progress using PostgreSQL.
package progress

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// Repo provides progress persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new progress repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns the user's progress records, most recently updated first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]domain.QuestionProgress, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, `
SELECT p.user_id, p.question_id, q.slug, p.status, p.updated_at
FROM question_progress p
JOIN questions q ON q.id = p.question_id
WHERE p.user_id = $1
ORDER BY p.updated_at DESC, q.slug`, userID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	result := make([]domain.QuestionProgress, 0)
	for rows.Next() {
		var (
			p      domain.QuestionProgress
			status string
		)
		if err := rows.Scan(&p.UserID, &p.QuestionID, &p.QuestionSlug, &status, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list progress: %w", err)
		}
		p.Status = domain.ProgressStatus(status)
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return result, nil
}

// Upsert records the status of a question for the user.
func (r *Repo) Upsert(ctx context.Context, userID, questionID uuid.UUID, status domain.ProgressStatus) (*domain.QuestionProgress, error) {
	p := domain.QuestionProgress{UserID: userID, QuestionID: questionID, Status: status}
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, `
INSERT INTO question_progress (user_id, question_id, status)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, question_id) DO UPDATE
SET status = EXCLUDED.status, updated_at = now()
RETURNING updated_at`, userID, questionID, string(status)).Scan(&p.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "question_progress", questionID.String())
	}
	return &p, nil
}
