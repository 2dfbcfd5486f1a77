package compose

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/interviewprep-backend/internal/adapter/provider/llm"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
	"github.com/heartmarshall/interviewprep-backend/internal/service/content"
)

type completer interface {
	CompleteJSON(ctx context.Context, req llm.Request, out any) error
}

type topicCatalog interface {
	ListTopics(ctx context.Context, publishedOnly bool) ([]domain.Topic, error)
	ListSubcategories(ctx context.Context) ([]domain.Subcategory, error)
}

type drafter interface {
	SaveDraft(ctx context.Context, auth domain.AuthContext, input content.SaveDraftInput) (*content.SaveDraftResult, error)
}

const (
	MaxSuggestions = 5
)

// Service backs the AI-assisted composer. Model output is advisory: every
// suggestion is checked against the catalog and nothing is written except
// through the shared draft save.
type Service struct {
	llm     completer
	catalog topicCatalog
	content drafter
	log     *slog.Logger
}

func NewService(log *slog.Logger, llm completer, catalog topicCatalog, content drafter) *Service {
	return &Service{
		llm:     llm,
		catalog: catalog,
		content: content,
		log:     log.With("service", "compose"),
	}
}

// SaveDraft stores the composed package through the same state machine as the
// manual composer.
func (s *Service) SaveDraft(ctx context.Context, auth domain.AuthContext, input content.SaveDraftInput) (*content.SaveDraftResult, error) {
	return s.content.SaveDraft(ctx, auth, input)
}

func authorize(auth domain.AuthContext) error {
	if auth.UserID == uuid.Nil {
		return domain.ErrUnauthorized
	}
	if !auth.CanEditContent() {
		return domain.ErrForbidden
	}
	return nil
}
