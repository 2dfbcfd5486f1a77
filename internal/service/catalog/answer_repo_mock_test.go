package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

var _ answerRepo = &answerRepoMock{}

type answerRepoMock struct {
	GetPrimaryFunc func(ctx context.Context, questionID uuid.UUID) (*domain.Answer, error)

	calls struct {
		GetPrimary []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
		}
	}
	lockGetPrimary sync.RWMutex
}

func (mock *answerRepoMock) GetPrimary(ctx context.Context, questionID uuid.UUID) (*domain.Answer, error) {
	if mock.GetPrimaryFunc == nil {
		panic("answerRepoMock.GetPrimaryFunc: method is nil but answerRepo.GetPrimary was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}{
		Ctx:        ctx,
		QuestionID: questionID,
	}
	mock.lockGetPrimary.Lock()
	mock.calls.GetPrimary = append(mock.calls.GetPrimary, callInfo)
	mock.lockGetPrimary.Unlock()
	return mock.GetPrimaryFunc(ctx, questionID)
}

// GetPrimaryCalls gets all the calls that were made to GetPrimary.
func (mock *answerRepoMock) GetPrimaryCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}
	mock.lockGetPrimary.RLock()
	calls = mock.calls.GetPrimary
	mock.lockGetPrimary.RUnlock()
	return calls
}
