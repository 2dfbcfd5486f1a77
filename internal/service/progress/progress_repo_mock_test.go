package progress

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	ListFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.QuestionProgress, error)
	UpsertFunc func(ctx context.Context, userID uuid.UUID, questionID uuid.UUID, status domain.ProgressStatus) (*domain.QuestionProgress, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Upsert []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			QuestionID uuid.UUID
			Status     domain.ProgressStatus
		}
	}
	lockList   sync.RWMutex
	lockUpsert sync.RWMutex
}

func (mock *progressRepoMock) List(ctx context.Context, userID uuid.UUID) ([]domain.QuestionProgress, error) {
	if mock.ListFunc == nil {
		panic("progressRepoMock.ListFunc: method is nil but progressRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID)
}

// ListCalls gets all the calls that were made to List.
func (mock *progressRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *progressRepoMock) Upsert(ctx context.Context, userID uuid.UUID, questionID uuid.UUID, status domain.ProgressStatus) (*domain.QuestionProgress, error) {
	if mock.UpsertFunc == nil {
		panic("progressRepoMock.UpsertFunc: method is nil but progressRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		QuestionID uuid.UUID
		Status     domain.ProgressStatus
	}{
		Ctx:        ctx,
		UserID:     userID,
		QuestionID: questionID,
		Status:     status,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, userID, questionID, status)
}

// UpsertCalls gets all the calls that were made to Upsert.
func (mock *progressRepoMock) UpsertCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	QuestionID uuid.UUID
	Status     domain.ProgressStatus
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		QuestionID uuid.UUID
		Status     domain.ProgressStatus
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
