package content

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetBySlugsFunc              func(ctx context.Context, slugs []string) ([]domain.Topic, error)
	SlugExistsFunc              func(ctx context.Context, slug string) (bool, error)
	FindByNameInSubcategoryFunc func(ctx context.Context, subcategoryID uuid.UUID, name string, excludeSlug string, limit int) ([]domain.Topic, error)
	CreateFunc                  func(ctx context.Context, t domain.Topic) (*domain.Topic, error)
	PublishForQuestionFunc      func(ctx context.Context, questionID uuid.UUID) ([]string, error)

	calls struct {
		GetBySlugs []struct {
			Ctx   context.Context
			Slugs []string
		}
		SlugExists []struct {
			Ctx  context.Context
			Slug string
		}
		FindByNameInSubcategory []struct {
			Ctx           context.Context
			SubcategoryID uuid.UUID
			Name          string
			ExcludeSlug   string
			Limit         int
		}
		Create []struct {
			Ctx context.Context
			T   domain.Topic
		}
		PublishForQuestion []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
		}
	}
	lockGetBySlugs              sync.RWMutex
	lockSlugExists              sync.RWMutex
	lockFindByNameInSubcategory sync.RWMutex
	lockCreate                  sync.RWMutex
	lockPublishForQuestion      sync.RWMutex
}

func (mock *topicRepoMock) GetBySlugs(ctx context.Context, slugs []string) ([]domain.Topic, error) {
	if mock.GetBySlugsFunc == nil {
		panic("topicRepoMock.GetBySlugsFunc: method is nil but topicRepo.GetBySlugs was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Slugs []string
	}{
		Ctx:   ctx,
		Slugs: slugs,
	}
	mock.lockGetBySlugs.Lock()
	mock.calls.GetBySlugs = append(mock.calls.GetBySlugs, callInfo)
	mock.lockGetBySlugs.Unlock()
	return mock.GetBySlugsFunc(ctx, slugs)
}

// GetBySlugsCalls gets all the calls that were made to GetBySlugs.
func (mock *topicRepoMock) GetBySlugsCalls() []struct {
	Ctx   context.Context
	Slugs []string
} {
	var calls []struct {
		Ctx   context.Context
		Slugs []string
	}
	mock.lockGetBySlugs.RLock()
	calls = mock.calls.GetBySlugs
	mock.lockGetBySlugs.RUnlock()
	return calls
}

func (mock *topicRepoMock) SlugExists(ctx context.Context, slug string) (bool, error) {
	if mock.SlugExistsFunc == nil {
		panic("topicRepoMock.SlugExistsFunc: method is nil but topicRepo.SlugExists was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{
		Ctx:  ctx,
		Slug: slug,
	}
	mock.lockSlugExists.Lock()
	mock.calls.SlugExists = append(mock.calls.SlugExists, callInfo)
	mock.lockSlugExists.Unlock()
	return mock.SlugExistsFunc(ctx, slug)
}

// SlugExistsCalls gets all the calls that were made to SlugExists.
func (mock *topicRepoMock) SlugExistsCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	var calls []struct {
		Ctx  context.Context
		Slug string
	}
	mock.lockSlugExists.RLock()
	calls = mock.calls.SlugExists
	mock.lockSlugExists.RUnlock()
	return calls
}

func (mock *topicRepoMock) FindByNameInSubcategory(ctx context.Context, subcategoryID uuid.UUID, name string, excludeSlug string, limit int) ([]domain.Topic, error) {
	if mock.FindByNameInSubcategoryFunc == nil {
		panic("topicRepoMock.FindByNameInSubcategoryFunc: method is nil but topicRepo.FindByNameInSubcategory was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		SubcategoryID uuid.UUID
		Name          string
		ExcludeSlug   string
		Limit         int
	}{
		Ctx:           ctx,
		SubcategoryID: subcategoryID,
		Name:          name,
		ExcludeSlug:   excludeSlug,
		Limit:         limit,
	}
	mock.lockFindByNameInSubcategory.Lock()
	mock.calls.FindByNameInSubcategory = append(mock.calls.FindByNameInSubcategory, callInfo)
	mock.lockFindByNameInSubcategory.Unlock()
	return mock.FindByNameInSubcategoryFunc(ctx, subcategoryID, name, excludeSlug, limit)
}

// FindByNameInSubcategoryCalls gets all the calls that were made to FindByNameInSubcategory.
func (mock *topicRepoMock) FindByNameInSubcategoryCalls() []struct {
	Ctx           context.Context
	SubcategoryID uuid.UUID
	Name          string
	ExcludeSlug   string
	Limit         int
} {
	var calls []struct {
		Ctx           context.Context
		SubcategoryID uuid.UUID
		Name          string
		ExcludeSlug   string
		Limit         int
	}
	mock.lockFindByNameInSubcategory.RLock()
	calls = mock.calls.FindByNameInSubcategory
	mock.lockFindByNameInSubcategory.RUnlock()
	return calls
}

func (mock *topicRepoMock) Create(ctx context.Context, t domain.Topic) (*domain.Topic, error) {
	if mock.CreateFunc == nil {
		panic("topicRepoMock.CreateFunc: method is nil but topicRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.Topic
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *topicRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   domain.Topic
} {
	var calls []struct {
		Ctx context.Context
		T   domain.Topic
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *topicRepoMock) PublishForQuestion(ctx context.Context, questionID uuid.UUID) ([]string, error) {
	if mock.PublishForQuestionFunc == nil {
		panic("topicRepoMock.PublishForQuestionFunc: method is nil but topicRepo.PublishForQuestion was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}{
		Ctx:        ctx,
		QuestionID: questionID,
	}
	mock.lockPublishForQuestion.Lock()
	mock.calls.PublishForQuestion = append(mock.calls.PublishForQuestion, callInfo)
	mock.lockPublishForQuestion.Unlock()
	return mock.PublishForQuestionFunc(ctx, questionID)
}

// PublishForQuestionCalls gets all the calls that were made to PublishForQuestion.
func (mock *topicRepoMock) PublishForQuestionCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}
	mock.lockPublishForQuestion.RLock()
	calls = mock.calls.PublishForQuestion
	mock.lockPublishForQuestion.RUnlock()
	return calls
}
