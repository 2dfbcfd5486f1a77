package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/config"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	// MaxDuplicateMatches caps how many similar rows a duplicate warning lists.
	MaxDuplicateMatches = 5

	MaxTitleLength       = 300
	MaxSummaryLength     = 2000
	MaxAnswerLength      = 100_000
	MaxTopicNameLength   = 200
	MaxTopicDescLength   = 1000
	MaxTopicSlugsPerSave = 20
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type questionRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Question, error)
	GetBySlugForUpdate(ctx context.Context, slug string) (*domain.Question, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	FindTitleDuplicates(ctx context.Context, title, excludeSlug string, publishedOnly bool, limit int) ([]domain.Question, error)
	CountLinks(ctx context.Context, questionID uuid.UUID) (int, error)
	ListTopicLabels(ctx context.Context, questionID uuid.UUID) ([]domain.TopicLabel, error)
	Create(ctx context.Context, slug, title, summary string) (*domain.Question, error)
	UpdateDraft(ctx context.Context, id uuid.UUID, title, summary string) (*domain.Question, error)
	Publish(ctx context.Context, id uuid.UUID) (bool, error)
	Demote(ctx context.Context, id uuid.UUID) (bool, error)
	ReplaceLinks(ctx context.Context, questionID uuid.UUID, topicIDs []uuid.UUID) error
}

type topicRepo interface {
	GetBySlugs(ctx context.Context, slugs []string) ([]domain.Topic, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	FindByNameInSubcategory(ctx context.Context, subcategoryID uuid.UUID, name, excludeSlug string, limit int) ([]domain.Topic, error)
	Create(ctx context.Context, t domain.Topic) (*domain.Topic, error)
	PublishForQuestion(ctx context.Context, questionID uuid.UUID) ([]string, error)
}

type answerRepo interface {
	GetPrimaryForUpdate(ctx context.Context, questionID uuid.UUID) (*domain.Answer, error)
	CreatePrimary(ctx context.Context, questionID uuid.UUID, markdown string) (*domain.Answer, error)
	UpdateDraft(ctx context.Context, id uuid.UUID, markdown string) (*domain.Answer, error)
	PublishPrimary(ctx context.Context, questionID uuid.UUID) (bool, error)
	DemotePrimary(ctx context.Context, questionID uuid.UUID) (bool, error)
}

type subcategoryRepo interface {
	GetSubcategoryBySlug(ctx context.Context, slug string) (*domain.Subcategory, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements draft save, publish and topic creation for editors.
type Service struct {
	log           *slog.Logger
	questions     questionRepo
	topics        topicRepo
	answers       answerRepo
	subcategories subcategoryRepo
	audit         auditLogger
	tx            txManager
	cfg           config.ContentConfig
}

// NewService creates a new content service.
func NewService(
	logger *slog.Logger,
	questions questionRepo,
	topics topicRepo,
	answers answerRepo,
	subcategories subcategoryRepo,
	audit auditLogger,
	tx txManager,
	cfg config.ContentConfig,
) *Service {
	return &Service{
		log:           logger.With("service", "content"),
		questions:     questions,
		topics:        topics,
		answers:       answers,
		subcategories: subcategories,
		audit:         audit,
		tx:            tx,
		cfg:           cfg,
	}
}

// authorize checks that the caller may edit content.
func authorize(auth domain.AuthContext) error {
	if auth.UserID == uuid.Nil {
		return domain.ErrUnauthorized
	}
	if !auth.CanEditContent() {
		return domain.ErrForbidden
	}
	return nil
}

// record appends an audit entry inside the current transaction.
func (s *Service) record(ctx context.Context, auth domain.AuthContext, entity domain.AuditEntity, slug string, action domain.AuditAction, changes map[string]any) error {
	err := s.audit.Log(ctx, domain.AuditRecord{
		UserID:     auth.UserID,
		EntityType: entity,
		EntitySlug: slug,
		Action:     action,
		Changes:    changes,
	})
	if err != nil {
		return fmt.Errorf("audit %s: %w", action, err)
	}
	return nil
}

func (s *Service) slugFallback() string {
	if s.cfg.SlugFallback != "" {
		return s.cfg.SlugFallback
	}
	return domain.DefaultSlugFallback
}
