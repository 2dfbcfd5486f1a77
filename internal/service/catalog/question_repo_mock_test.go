package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

var _ questionRepo = &questionRepoMock{}

type questionRepoMock struct {
	GetBySlugFunc       func(ctx context.Context, slug string) (*domain.Question, error)
	ListTopicLabelsFunc func(ctx context.Context, questionID uuid.UUID) ([]domain.TopicLabel, error)

	calls struct {
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		ListTopicLabels []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
		}
	}
	lockGetBySlug       sync.RWMutex
	lockListTopicLabels sync.RWMutex
}

func (mock *questionRepoMock) GetBySlug(ctx context.Context, slug string) (*domain.Question, error) {
	if mock.GetBySlugFunc == nil {
		panic("questionRepoMock.GetBySlugFunc: method is nil but questionRepo.GetBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{
		Ctx:  ctx,
		Slug: slug,
	}
	mock.lockGetBySlug.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, callInfo)
	mock.lockGetBySlug.Unlock()
	return mock.GetBySlugFunc(ctx, slug)
}

// GetBySlugCalls gets all the calls that were made to GetBySlug.
func (mock *questionRepoMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	var calls []struct {
		Ctx  context.Context
		Slug string
	}
	mock.lockGetBySlug.RLock()
	calls = mock.calls.GetBySlug
	mock.lockGetBySlug.RUnlock()
	return calls
}

func (mock *questionRepoMock) ListTopicLabels(ctx context.Context, questionID uuid.UUID) ([]domain.TopicLabel, error) {
	if mock.ListTopicLabelsFunc == nil {
		panic("questionRepoMock.ListTopicLabelsFunc: method is nil but questionRepo.ListTopicLabels was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}{
		Ctx:        ctx,
		QuestionID: questionID,
	}
	mock.lockListTopicLabels.Lock()
	mock.calls.ListTopicLabels = append(mock.calls.ListTopicLabels, callInfo)
	mock.lockListTopicLabels.Unlock()
	return mock.ListTopicLabelsFunc(ctx, questionID)
}

// ListTopicLabelsCalls gets all the calls that were made to ListTopicLabels.
func (mock *questionRepoMock) ListTopicLabelsCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}
	mock.lockListTopicLabels.RLock()
	calls = mock.calls.ListTopicLabels
	mock.lockListTopicLabels.RUnlock()
	return calls
}
