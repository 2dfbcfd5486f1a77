package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

var _ catalogWriter = &catalogWriterMock{}

type catalogWriterMock struct {
	UpsertCategoryFunc          func(ctx context.Context, c domain.Category) (uuid.UUID, error)
	UpsertSubcategoryFunc       func(ctx context.Context, s domain.Subcategory, categoryID uuid.UUID) (uuid.UUID, error)
	UpsertPublishedTopicFunc    func(ctx context.Context, t domain.Topic, subcategoryID uuid.UUID) (uuid.UUID, error)
	UpsertPublishedQuestionFunc func(ctx context.Context, q domain.PublishedQuestion, topicIDs []uuid.UUID) error

	calls struct {
		UpsertCategory []struct {
			Ctx context.Context
			C   domain.Category
		}
		UpsertSubcategory []struct {
			Ctx        context.Context
			S          domain.Subcategory
			CategoryID uuid.UUID
		}
		UpsertPublishedTopic []struct {
			Ctx           context.Context
			T             domain.Topic
			SubcategoryID uuid.UUID
		}
		UpsertPublishedQuestion []struct {
			Ctx      context.Context
			Q        domain.PublishedQuestion
			TopicIDs []uuid.UUID
		}
	}
	lockUpsertCategory          sync.RWMutex
	lockUpsertSubcategory       sync.RWMutex
	lockUpsertPublishedTopic    sync.RWMutex
	lockUpsertPublishedQuestion sync.RWMutex
}

func (mock *catalogWriterMock) UpsertCategory(ctx context.Context, c domain.Category) (uuid.UUID, error) {
	if mock.UpsertCategoryFunc == nil {
		panic("catalogWriterMock.UpsertCategoryFunc: method is nil but catalogWriter.UpsertCategory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Category
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockUpsertCategory.Lock()
	mock.calls.UpsertCategory = append(mock.calls.UpsertCategory, callInfo)
	mock.lockUpsertCategory.Unlock()
	return mock.UpsertCategoryFunc(ctx, c)
}

// UpsertCategoryCalls gets all the calls that were made to UpsertCategory.
func (mock *catalogWriterMock) UpsertCategoryCalls() []struct {
	Ctx context.Context
	C   domain.Category
} {
	var calls []struct {
		Ctx context.Context
		C   domain.Category
	}
	mock.lockUpsertCategory.RLock()
	calls = mock.calls.UpsertCategory
	mock.lockUpsertCategory.RUnlock()
	return calls
}

func (mock *catalogWriterMock) UpsertSubcategory(ctx context.Context, s domain.Subcategory, categoryID uuid.UUID) (uuid.UUID, error) {
	if mock.UpsertSubcategoryFunc == nil {
		panic("catalogWriterMock.UpsertSubcategoryFunc: method is nil but catalogWriter.UpsertSubcategory was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		S          domain.Subcategory
		CategoryID uuid.UUID
	}{
		Ctx:        ctx,
		S:          s,
		CategoryID: categoryID,
	}
	mock.lockUpsertSubcategory.Lock()
	mock.calls.UpsertSubcategory = append(mock.calls.UpsertSubcategory, callInfo)
	mock.lockUpsertSubcategory.Unlock()
	return mock.UpsertSubcategoryFunc(ctx, s, categoryID)
}

// UpsertSubcategoryCalls gets all the calls that were made to UpsertSubcategory.
func (mock *catalogWriterMock) UpsertSubcategoryCalls() []struct {
	Ctx        context.Context
	S          domain.Subcategory
	CategoryID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		S          domain.Subcategory
		CategoryID uuid.UUID
	}
	mock.lockUpsertSubcategory.RLock()
	calls = mock.calls.UpsertSubcategory
	mock.lockUpsertSubcategory.RUnlock()
	return calls
}

func (mock *catalogWriterMock) UpsertPublishedTopic(ctx context.Context, t domain.Topic, subcategoryID uuid.UUID) (uuid.UUID, error) {
	if mock.UpsertPublishedTopicFunc == nil {
		panic("catalogWriterMock.UpsertPublishedTopicFunc: method is nil but catalogWriter.UpsertPublishedTopic was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		T             domain.Topic
		SubcategoryID uuid.UUID
	}{
		Ctx:           ctx,
		T:             t,
		SubcategoryID: subcategoryID,
	}
	mock.lockUpsertPublishedTopic.Lock()
	mock.calls.UpsertPublishedTopic = append(mock.calls.UpsertPublishedTopic, callInfo)
	mock.lockUpsertPublishedTopic.Unlock()
	return mock.UpsertPublishedTopicFunc(ctx, t, subcategoryID)
}

// UpsertPublishedTopicCalls gets all the calls that were made to UpsertPublishedTopic.
func (mock *catalogWriterMock) UpsertPublishedTopicCalls() []struct {
	Ctx           context.Context
	T             domain.Topic
	SubcategoryID uuid.UUID
} {
	var calls []struct {
		Ctx           context.Context
		T             domain.Topic
		SubcategoryID uuid.UUID
	}
	mock.lockUpsertPublishedTopic.RLock()
	calls = mock.calls.UpsertPublishedTopic
	mock.lockUpsertPublishedTopic.RUnlock()
	return calls
}

func (mock *catalogWriterMock) UpsertPublishedQuestion(ctx context.Context, q domain.PublishedQuestion, topicIDs []uuid.UUID) error {
	if mock.UpsertPublishedQuestionFunc == nil {
		panic("catalogWriterMock.UpsertPublishedQuestionFunc: method is nil but catalogWriter.UpsertPublishedQuestion was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Q        domain.PublishedQuestion
		TopicIDs []uuid.UUID
	}{
		Ctx:      ctx,
		Q:        q,
		TopicIDs: topicIDs,
	}
	mock.lockUpsertPublishedQuestion.Lock()
	mock.calls.UpsertPublishedQuestion = append(mock.calls.UpsertPublishedQuestion, callInfo)
	mock.lockUpsertPublishedQuestion.Unlock()
	return mock.UpsertPublishedQuestionFunc(ctx, q, topicIDs)
}

// UpsertPublishedQuestionCalls gets all the calls that were made to UpsertPublishedQuestion.
func (mock *catalogWriterMock) UpsertPublishedQuestionCalls() []struct {
	Ctx      context.Context
	Q        domain.PublishedQuestion
	TopicIDs []uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		Q        domain.PublishedQuestion
		TopicIDs []uuid.UUID
	}
	mock.lockUpsertPublishedQuestion.RLock()
	calls = mock.calls.UpsertPublishedQuestion
	mock.lockUpsertPublishedQuestion.RUnlock()
	return calls
}
