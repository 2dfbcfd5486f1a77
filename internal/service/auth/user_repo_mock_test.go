package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc     func(ctx context.Context, email string, displayName string, passwordHash string) (*domain.User, error)
	GetRoleFunc    func(ctx context.Context, userID uuid.UUID) (domain.UserRole, error)
	GrantRoleFunc  func(ctx context.Context, userID uuid.UUID, role domain.UserRole) error

	calls struct {
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		Create []struct {
			Ctx          context.Context
			Email        string
			DisplayName  string
			PasswordHash string
		}
		GetRole []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GrantRole []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Role   domain.UserRole
		}
	}
	lockGetByEmail sync.RWMutex
	lockCreate     sync.RWMutex
	lockGetRole    sync.RWMutex
	lockGrantRole  sync.RWMutex
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{
		Ctx:   ctx,
		Email: email,
	}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

// GetByEmailCalls gets all the calls that were made to GetByEmail.
func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	var calls []struct {
		Ctx   context.Context
		Email string
	}
	mock.lockGetByEmail.RLock()
	calls = mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, email string, displayName string, passwordHash string) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Email        string
		DisplayName  string
		PasswordHash string
	}{
		Ctx:          ctx,
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, email, displayName, passwordHash)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *userRepoMock) CreateCalls() []struct {
	Ctx          context.Context
	Email        string
	DisplayName  string
	PasswordHash string
} {
	var calls []struct {
		Ctx          context.Context
		Email        string
		DisplayName  string
		PasswordHash string
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetRole(ctx context.Context, userID uuid.UUID) (domain.UserRole, error) {
	if mock.GetRoleFunc == nil {
		panic("userRepoMock.GetRoleFunc: method is nil but userRepo.GetRole was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetRole.Lock()
	mock.calls.GetRole = append(mock.calls.GetRole, callInfo)
	mock.lockGetRole.Unlock()
	return mock.GetRoleFunc(ctx, userID)
}

// GetRoleCalls gets all the calls that were made to GetRole.
func (mock *userRepoMock) GetRoleCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGetRole.RLock()
	calls = mock.calls.GetRole
	mock.lockGetRole.RUnlock()
	return calls
}

func (mock *userRepoMock) GrantRole(ctx context.Context, userID uuid.UUID, role domain.UserRole) error {
	if mock.GrantRoleFunc == nil {
		panic("userRepoMock.GrantRoleFunc: method is nil but userRepo.GrantRole was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Role   domain.UserRole
	}{
		Ctx:    ctx,
		UserID: userID,
		Role:   role,
	}
	mock.lockGrantRole.Lock()
	mock.calls.GrantRole = append(mock.calls.GrantRole, callInfo)
	mock.lockGrantRole.Unlock()
	return mock.GrantRoleFunc(ctx, userID, role)
}

// GrantRoleCalls gets all the calls that were made to GrantRole.
func (mock *userRepoMock) GrantRoleCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Role   domain.UserRole
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Role   domain.UserRole
	}
	mock.lockGrantRole.RLock()
	calls = mock.calls.GrantRole
	mock.lockGrantRole.RUnlock()
	return calls
}
