package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction names an editor operation recorded in the content audit trail.
type AuditAction string

const (
	AuditActionSaveDraft   AuditAction = "save_draft"
	AuditActionPublish     AuditAction = "publish"
	AuditActionUnpublish   AuditAction = "unpublish"
	AuditActionCreateTopic AuditAction = "create_topic"
)

// AuditEntity is the kind of row an audit record points at.
type AuditEntity string

const (
	AuditEntityQuestion AuditEntity = "question"
	AuditEntityTopic    AuditEntity = "topic"
)

// AuditRecord is one append-only entry of the content audit trail.
// Entities are referenced by slug so history survives re-syncs between databases.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType AuditEntity
	EntitySlug string
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
