// Package audit implements the append-only content audit trail using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type auditRow struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	EntityType string    `db:"entity_type"`
	EntitySlug string    `db:"entity_slug"`
	Action     string    `db:"action"`
	Changes    []byte    `db:"changes"`
	CreatedAt  time.Time `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Log appends an audit record. It runs inside the caller's transaction when
// one is present on ctx, so a rolled back edit leaves no trace.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	changes := record.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("audit marshal changes: %w", err)
	}

	cols := []string{"user_id", "entity_type", "entity_slug", "action", "changes"}
	vals := []any{record.UserID, string(record.EntityType), record.EntitySlug, string(record.Action), changesJSON}
	if record.ID != uuid.Nil {
		cols = append(cols, "id")
		vals = append(vals, record.ID)
	}

	sql, args, err := postgres.Builder.Insert("content_audit").Columns(cols...).Values(vals...).ToSql()
	if err != nil {
		return fmt.Errorf("audit build insert: %w", err)
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "content_audit", record.EntitySlug)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByEntity returns the history of one entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.AuditEntity, slug string, limit int) ([]domain.AuditRecord, error) {
	qb := postgres.Builder.Select("id", "user_id", "entity_type", "entity_slug", "action", "changes", "created_at").
		From("content_audit").
		Where(squirrel.Eq{"entity_type": string(entityType)}).
		Where(squirrel.Eq{"entity_slug": slug}).
		OrderBy("created_at DESC", "id")
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("audit build select: %w", err)
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}

	out := make([]domain.AuditRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func toDomain(row auditRow) (domain.AuditRecord, error) {
	rec := domain.AuditRecord{
		ID:         row.ID,
		UserID:     row.UserID,
		EntityType: domain.AuditEntity(row.EntityType),
		EntitySlug: row.EntitySlug,
		Action:     domain.AuditAction(row.Action),
		CreatedAt:  row.CreatedAt,
	}
	if len(row.Changes) > 0 {
		if err := json.Unmarshal(row.Changes, &rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit unmarshal changes: %w", err)
		}
	}
	return rec, nil
}
