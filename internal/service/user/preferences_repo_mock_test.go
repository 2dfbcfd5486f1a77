package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

var _ preferencesRepo = &preferencesRepoMock{}

type preferencesRepoMock struct {
	GetUserPreferencesFunc       func(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error)
	UpsertUserPreferencesFunc    func(ctx context.Context, p domain.UserPreferences) (*domain.UserPreferences, error)
	GetAccountPreferencesFunc    func(ctx context.Context, userID uuid.UUID) (*domain.AccountPreferences, error)
	UpsertAccountPreferencesFunc func(ctx context.Context, p domain.AccountPreferences) (*domain.AccountPreferences, error)

	calls struct {
		GetUserPreferences []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpsertUserPreferences []struct {
			Ctx context.Context
			P   domain.UserPreferences
		}
		GetAccountPreferences []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpsertAccountPreferences []struct {
			Ctx context.Context
			P   domain.AccountPreferences
		}
	}
	lockGetUserPreferences       sync.RWMutex
	lockUpsertUserPreferences    sync.RWMutex
	lockGetAccountPreferences    sync.RWMutex
	lockUpsertAccountPreferences sync.RWMutex
}

func (mock *preferencesRepoMock) GetUserPreferences(ctx context.Context, userID uuid.UUID) (*domain.UserPreferences, error) {
	if mock.GetUserPreferencesFunc == nil {
		panic("preferencesRepoMock.GetUserPreferencesFunc: method is nil but preferencesRepo.GetUserPreferences was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetUserPreferences.Lock()
	mock.calls.GetUserPreferences = append(mock.calls.GetUserPreferences, callInfo)
	mock.lockGetUserPreferences.Unlock()
	return mock.GetUserPreferencesFunc(ctx, userID)
}

// GetUserPreferencesCalls gets all the calls that were made to GetUserPreferences.
func (mock *preferencesRepoMock) GetUserPreferencesCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGetUserPreferences.RLock()
	calls = mock.calls.GetUserPreferences
	mock.lockGetUserPreferences.RUnlock()
	return calls
}

func (mock *preferencesRepoMock) UpsertUserPreferences(ctx context.Context, p domain.UserPreferences) (*domain.UserPreferences, error) {
	if mock.UpsertUserPreferencesFunc == nil {
		panic("preferencesRepoMock.UpsertUserPreferencesFunc: method is nil but preferencesRepo.UpsertUserPreferences was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.UserPreferences
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockUpsertUserPreferences.Lock()
	mock.calls.UpsertUserPreferences = append(mock.calls.UpsertUserPreferences, callInfo)
	mock.lockUpsertUserPreferences.Unlock()
	return mock.UpsertUserPreferencesFunc(ctx, p)
}

// UpsertUserPreferencesCalls gets all the calls that were made to UpsertUserPreferences.
func (mock *preferencesRepoMock) UpsertUserPreferencesCalls() []struct {
	Ctx context.Context
	P   domain.UserPreferences
} {
	var calls []struct {
		Ctx context.Context
		P   domain.UserPreferences
	}
	mock.lockUpsertUserPreferences.RLock()
	calls = mock.calls.UpsertUserPreferences
	mock.lockUpsertUserPreferences.RUnlock()
	return calls
}

func (mock *preferencesRepoMock) GetAccountPreferences(ctx context.Context, userID uuid.UUID) (*domain.AccountPreferences, error) {
	if mock.GetAccountPreferencesFunc == nil {
		panic("preferencesRepoMock.GetAccountPreferencesFunc: method is nil but preferencesRepo.GetAccountPreferences was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetAccountPreferences.Lock()
	mock.calls.GetAccountPreferences = append(mock.calls.GetAccountPreferences, callInfo)
	mock.lockGetAccountPreferences.Unlock()
	return mock.GetAccountPreferencesFunc(ctx, userID)
}

// GetAccountPreferencesCalls gets all the calls that were made to GetAccountPreferences.
func (mock *preferencesRepoMock) GetAccountPreferencesCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGetAccountPreferences.RLock()
	calls = mock.calls.GetAccountPreferences
	mock.lockGetAccountPreferences.RUnlock()
	return calls
}

func (mock *preferencesRepoMock) UpsertAccountPreferences(ctx context.Context, p domain.AccountPreferences) (*domain.AccountPreferences, error) {
	if mock.UpsertAccountPreferencesFunc == nil {
		panic("preferencesRepoMock.UpsertAccountPreferencesFunc: method is nil but preferencesRepo.UpsertAccountPreferences was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.AccountPreferences
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockUpsertAccountPreferences.Lock()
	mock.calls.UpsertAccountPreferences = append(mock.calls.UpsertAccountPreferences, callInfo)
	mock.lockUpsertAccountPreferences.Unlock()
	return mock.UpsertAccountPreferencesFunc(ctx, p)
}

// UpsertAccountPreferencesCalls gets all the calls that were made to UpsertAccountPreferences.
func (mock *preferencesRepoMock) UpsertAccountPreferencesCalls() []struct {
	Ctx context.Context
	P   domain.AccountPreferences
} {
	var calls []struct {
		Ctx context.Context
		P   domain.AccountPreferences
	}
	mock.lockUpsertAccountPreferences.RLock()
	calls = mock.calls.UpsertAccountPreferences
	mock.lockUpsertAccountPreferences.RUnlock()
	return calls
}
