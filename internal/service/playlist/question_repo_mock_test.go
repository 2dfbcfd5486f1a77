package playlist

import (
	"context"
	"sync"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

var _ questionRepo = &questionRepoMock{}

type questionRepoMock struct {
	GetBySlugFunc func(ctx context.Context, slug string) (*domain.Question, error)

	calls struct {
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
	}
	lockGetBySlug sync.RWMutex
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
