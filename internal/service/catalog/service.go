package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

// catalogRepo reads the catalog hierarchy and published questions.
type catalogRepo interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListSubcategories(ctx context.Context) ([]domain.Subcategory, error)
	ListTopics(ctx context.Context, publishedOnly bool) ([]domain.Topic, error)
	ListPublishedQuestions(ctx context.Context, f domain.QuestionFilter) ([]domain.PublishedQuestion, error)
}

// catalogWriter upserts catalog rows by slug on a sync target.
type catalogWriter interface {
	UpsertCategory(ctx context.Context, c domain.Category) (uuid.UUID, error)
	UpsertSubcategory(ctx context.Context, s domain.Subcategory, categoryID uuid.UUID) (uuid.UUID, error)
	UpsertPublishedTopic(ctx context.Context, t domain.Topic, subcategoryID uuid.UUID) (uuid.UUID, error)
	UpsertPublishedQuestion(ctx context.Context, q domain.PublishedQuestion, topicIDs []uuid.UUID) error
}

type questionRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Question, error)
	ListTopicLabels(ctx context.Context, questionID uuid.UUID) ([]domain.TopicLabel, error)
}

type answerRepo interface {
	GetPrimary(ctx context.Context, questionID uuid.UUID) (*domain.Answer, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultQuestionLimit = 20
	MaxQuestionLimit     = 100

	exportPageSize = 500
)

// Service serves the public, read-only view of published content.
type Service struct {
	catalog   catalogRepo
	questions questionRepo
	answers   answerRepo
	log       *slog.Logger
}

func NewService(log *slog.Logger, catalog catalogRepo, questions questionRepo, answers answerRepo) *Service {
	return &Service{
		catalog:   catalog,
		questions: questions,
		answers:   answers,
		log:       log.With("service", "catalog"),
	}
}
