package playlist

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

var _ playlistRepo = &playlistRepoMock{}

type playlistRepoMock struct {
	ListFunc       func(ctx context.Context, userID uuid.UUID) ([]domain.Playlist, error)
	CreateFunc     func(ctx context.Context, userID uuid.UUID, name string, description *string) (*domain.Playlist, error)
	DeleteFunc     func(ctx context.Context, userID uuid.UUID, playlistID uuid.UUID) error
	AddItemFunc    func(ctx context.Context, userID uuid.UUID, playlistID uuid.UUID, questionID uuid.UUID) error
	RemoveItemFunc func(ctx context.Context, userID uuid.UUID, playlistID uuid.UUID, questionID uuid.UUID) error

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx         context.Context
			UserID      uuid.UUID
			Name        string
			Description *string
		}
		Delete []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			PlaylistID uuid.UUID
		}
		AddItem []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			PlaylistID uuid.UUID
			QuestionID uuid.UUID
		}
		RemoveItem []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			PlaylistID uuid.UUID
			QuestionID uuid.UUID
		}
	}
	lockList       sync.RWMutex
	lockCreate     sync.RWMutex
	lockDelete     sync.RWMutex
	lockAddItem    sync.RWMutex
	lockRemoveItem sync.RWMutex
}

func (mock *playlistRepoMock) List(ctx context.Context, userID uuid.UUID) ([]domain.Playlist, error) {
	if mock.ListFunc == nil {
		panic("playlistRepoMock.ListFunc: method is nil but playlistRepo.List was just called")
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
func (mock *playlistRepoMock) ListCalls() []struct {
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

func (mock *playlistRepoMock) Create(ctx context.Context, userID uuid.UUID, name string, description *string) (*domain.Playlist, error) {
	if mock.CreateFunc == nil {
		panic("playlistRepoMock.CreateFunc: method is nil but playlistRepo.Create was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		UserID      uuid.UUID
		Name        string
		Description *string
	}{
		Ctx:         ctx,
		UserID:      userID,
		Name:        name,
		Description: description,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, name, description)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *playlistRepoMock) CreateCalls() []struct {
	Ctx         context.Context
	UserID      uuid.UUID
	Name        string
	Description *string
} {
	var calls []struct {
		Ctx         context.Context
		UserID      uuid.UUID
		Name        string
		Description *string
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *playlistRepoMock) Delete(ctx context.Context, userID uuid.UUID, playlistID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("playlistRepoMock.DeleteFunc: method is nil but playlistRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		PlaylistID uuid.UUID
	}{
		Ctx:        ctx,
		UserID:     userID,
		PlaylistID: playlistID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, playlistID)
}

// DeleteCalls gets all the calls that were made to Delete.
func (mock *playlistRepoMock) DeleteCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	PlaylistID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		PlaylistID uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *playlistRepoMock) AddItem(ctx context.Context, userID uuid.UUID, playlistID uuid.UUID, questionID uuid.UUID) error {
	if mock.AddItemFunc == nil {
		panic("playlistRepoMock.AddItemFunc: method is nil but playlistRepo.AddItem was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		PlaylistID uuid.UUID
		QuestionID uuid.UUID
	}{
		Ctx:        ctx,
		UserID:     userID,
		PlaylistID: playlistID,
		QuestionID: questionID,
	}
	mock.lockAddItem.Lock()
	mock.calls.AddItem = append(mock.calls.AddItem, callInfo)
	mock.lockAddItem.Unlock()
	return mock.AddItemFunc(ctx, userID, playlistID, questionID)
}

// AddItemCalls gets all the calls that were made to AddItem.
func (mock *playlistRepoMock) AddItemCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	PlaylistID uuid.UUID
	QuestionID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		PlaylistID uuid.UUID
		QuestionID uuid.UUID
	}
	mock.lockAddItem.RLock()
	calls = mock.calls.AddItem
	mock.lockAddItem.RUnlock()
	return calls
}

func (mock *playlistRepoMock) RemoveItem(ctx context.Context, userID uuid.UUID, playlistID uuid.UUID, questionID uuid.UUID) error {
	if mock.RemoveItemFunc == nil {
		panic("playlistRepoMock.RemoveItemFunc: method is nil but playlistRepo.RemoveItem was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		PlaylistID uuid.UUID
		QuestionID uuid.UUID
	}{
		Ctx:        ctx,
		UserID:     userID,
		PlaylistID: playlistID,
		QuestionID: questionID,
	}
	mock.lockRemoveItem.Lock()
	mock.calls.RemoveItem = append(mock.calls.RemoveItem, callInfo)
	mock.lockRemoveItem.Unlock()
	return mock.RemoveItemFunc(ctx, userID, playlistID, questionID)
}

// RemoveItemCalls gets all the calls that were made to RemoveItem.
func (mock *playlistRepoMock) RemoveItemCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	PlaylistID uuid.UUID
	QuestionID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		PlaylistID uuid.UUID
		QuestionID uuid.UUID
	}
	mock.lockRemoveItem.RLock()
	calls = mock.calls.RemoveItem
	mock.lockRemoveItem.RUnlock()
	return calls
}
