package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// Constraint names raised by the publish guardrail triggers
// (migrations/00002_publish_guardrail.sql).
const (
	ConstraintPublishedRequiresTopic = "questions_published_requires_topic"
	ConstraintKeepLastPublishedLink  = "question_topics_keep_last_published_link"
)

var guardrailReasons = map[string]string{
	ConstraintPublishedRequiresTopic: "a published question must be linked to at least one topic",
	ConstraintKeepLastPublishedLink:  "cannot remove the last topic link of a published question",
}

// MapError converts pgx/pgconn errors to domain errors and prefixes them with
// the entity and the key that was being accessed.
// context.DeadlineExceeded and context.Canceled are NOT mapped.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if reason, ok := guardrailReasons[pgErr.ConstraintName]; ok {
			return fmt.Errorf("%s %s: %w", entity, key, domain.NewGuardrailError(reason))
		}
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, key, err)
}
