package content

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

var _ questionRepo = &questionRepoMock{}

type questionRepoMock struct {
	GetBySlugFunc           func(ctx context.Context, slug string) (*domain.Question, error)
	GetBySlugForUpdateFunc  func(ctx context.Context, slug string) (*domain.Question, error)
	SlugExistsFunc          func(ctx context.Context, slug string) (bool, error)
	FindTitleDuplicatesFunc func(ctx context.Context, title string, excludeSlug string, publishedOnly bool, limit int) ([]domain.Question, error)
	CountLinksFunc          func(ctx context.Context, questionID uuid.UUID) (int, error)
	ListTopicLabelsFunc     func(ctx context.Context, questionID uuid.UUID) ([]domain.TopicLabel, error)
	CreateFunc              func(ctx context.Context, slug string, title string, summary string) (*domain.Question, error)
	UpdateDraftFunc         func(ctx context.Context, id uuid.UUID, title string, summary string) (*domain.Question, error)
	PublishFunc             func(ctx context.Context, id uuid.UUID) (bool, error)
	DemoteFunc              func(ctx context.Context, id uuid.UUID) (bool, error)
	ReplaceLinksFunc        func(ctx context.Context, questionID uuid.UUID, topicIDs []uuid.UUID) error

	calls struct {
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
		GetBySlugForUpdate []struct {
			Ctx  context.Context
			Slug string
		}
		SlugExists []struct {
			Ctx  context.Context
			Slug string
		}
		FindTitleDuplicates []struct {
			Ctx           context.Context
			Title         string
			ExcludeSlug   string
			PublishedOnly bool
			Limit         int
		}
		CountLinks []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
		}
		ListTopicLabels []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
		}
		Create []struct {
			Ctx     context.Context
			Slug    string
			Title   string
			Summary string
		}
		UpdateDraft []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Title   string
			Summary string
		}
		Publish []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Demote []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ReplaceLinks []struct {
			Ctx        context.Context
			QuestionID uuid.UUID
			TopicIDs   []uuid.UUID
		}
	}
	lockGetBySlug           sync.RWMutex
	lockGetBySlugForUpdate  sync.RWMutex
	lockSlugExists          sync.RWMutex
	lockFindTitleDuplicates sync.RWMutex
	lockCountLinks          sync.RWMutex
	lockListTopicLabels     sync.RWMutex
	lockCreate              sync.RWMutex
	lockUpdateDraft         sync.RWMutex
	lockPublish             sync.RWMutex
	lockDemote              sync.RWMutex
	lockReplaceLinks        sync.RWMutex
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

func (mock *questionRepoMock) GetBySlugForUpdate(ctx context.Context, slug string) (*domain.Question, error) {
	if mock.GetBySlugForUpdateFunc == nil {
		panic("questionRepoMock.GetBySlugForUpdateFunc: method is nil but questionRepo.GetBySlugForUpdate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{
		Ctx:  ctx,
		Slug: slug,
	}
	mock.lockGetBySlugForUpdate.Lock()
	mock.calls.GetBySlugForUpdate = append(mock.calls.GetBySlugForUpdate, callInfo)
	mock.lockGetBySlugForUpdate.Unlock()
	return mock.GetBySlugForUpdateFunc(ctx, slug)
}

// GetBySlugForUpdateCalls gets all the calls that were made to GetBySlugForUpdate.
func (mock *questionRepoMock) GetBySlugForUpdateCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	var calls []struct {
		Ctx  context.Context
		Slug string
	}
	mock.lockGetBySlugForUpdate.RLock()
	calls = mock.calls.GetBySlugForUpdate
	mock.lockGetBySlugForUpdate.RUnlock()
	return calls
}

func (mock *questionRepoMock) SlugExists(ctx context.Context, slug string) (bool, error) {
	if mock.SlugExistsFunc == nil {
		panic("questionRepoMock.SlugExistsFunc: method is nil but questionRepo.SlugExists was just called")
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
func (mock *questionRepoMock) SlugExistsCalls() []struct {
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

func (mock *questionRepoMock) FindTitleDuplicates(ctx context.Context, title string, excludeSlug string, publishedOnly bool, limit int) ([]domain.Question, error) {
	if mock.FindTitleDuplicatesFunc == nil {
		panic("questionRepoMock.FindTitleDuplicatesFunc: method is nil but questionRepo.FindTitleDuplicates was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		Title         string
		ExcludeSlug   string
		PublishedOnly bool
		Limit         int
	}{
		Ctx:           ctx,
		Title:         title,
		ExcludeSlug:   excludeSlug,
		PublishedOnly: publishedOnly,
		Limit:         limit,
	}
	mock.lockFindTitleDuplicates.Lock()
	mock.calls.FindTitleDuplicates = append(mock.calls.FindTitleDuplicates, callInfo)
	mock.lockFindTitleDuplicates.Unlock()
	return mock.FindTitleDuplicatesFunc(ctx, title, excludeSlug, publishedOnly, limit)
}

// FindTitleDuplicatesCalls gets all the calls that were made to FindTitleDuplicates.
func (mock *questionRepoMock) FindTitleDuplicatesCalls() []struct {
	Ctx           context.Context
	Title         string
	ExcludeSlug   string
	PublishedOnly bool
	Limit         int
} {
	var calls []struct {
		Ctx           context.Context
		Title         string
		ExcludeSlug   string
		PublishedOnly bool
		Limit         int
	}
	mock.lockFindTitleDuplicates.RLock()
	calls = mock.calls.FindTitleDuplicates
	mock.lockFindTitleDuplicates.RUnlock()
	return calls
}

func (mock *questionRepoMock) CountLinks(ctx context.Context, questionID uuid.UUID) (int, error) {
	if mock.CountLinksFunc == nil {
		panic("questionRepoMock.CountLinksFunc: method is nil but questionRepo.CountLinks was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}{
		Ctx:        ctx,
		QuestionID: questionID,
	}
	mock.lockCountLinks.Lock()
	mock.calls.CountLinks = append(mock.calls.CountLinks, callInfo)
	mock.lockCountLinks.Unlock()
	return mock.CountLinksFunc(ctx, questionID)
}

// CountLinksCalls gets all the calls that were made to CountLinks.
func (mock *questionRepoMock) CountLinksCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		QuestionID uuid.UUID
	}
	mock.lockCountLinks.RLock()
	calls = mock.calls.CountLinks
	mock.lockCountLinks.RUnlock()
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

func (mock *questionRepoMock) Create(ctx context.Context, slug string, title string, summary string) (*domain.Question, error) {
	if mock.CreateFunc == nil {
		panic("questionRepoMock.CreateFunc: method is nil but questionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Slug    string
		Title   string
		Summary string
	}{
		Ctx:     ctx,
		Slug:    slug,
		Title:   title,
		Summary: summary,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, slug, title, summary)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *questionRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Slug    string
	Title   string
	Summary string
} {
	var calls []struct {
		Ctx     context.Context
		Slug    string
		Title   string
		Summary string
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *questionRepoMock) UpdateDraft(ctx context.Context, id uuid.UUID, title string, summary string) (*domain.Question, error) {
	if mock.UpdateDraftFunc == nil {
		panic("questionRepoMock.UpdateDraftFunc: method is nil but questionRepo.UpdateDraft was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Title   string
		Summary string
	}{
		Ctx:     ctx,
		ID:      id,
		Title:   title,
		Summary: summary,
	}
	mock.lockUpdateDraft.Lock()
	mock.calls.UpdateDraft = append(mock.calls.UpdateDraft, callInfo)
	mock.lockUpdateDraft.Unlock()
	return mock.UpdateDraftFunc(ctx, id, title, summary)
}

// UpdateDraftCalls gets all the calls that were made to UpdateDraft.
func (mock *questionRepoMock) UpdateDraftCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Title   string
	Summary string
} {
	var calls []struct {
		Ctx     context.Context
		ID      uuid.UUID
		Title   string
		Summary string
	}
	mock.lockUpdateDraft.RLock()
	calls = mock.calls.UpdateDraft
	mock.lockUpdateDraft.RUnlock()
	return calls
}

func (mock *questionRepoMock) Publish(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.PublishFunc == nil {
		panic("questionRepoMock.PublishFunc: method is nil but questionRepo.Publish was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, id)
}

// PublishCalls gets all the calls that were made to Publish.
func (mock *questionRepoMock) PublishCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockPublish.RLock()
	calls = mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}

func (mock *questionRepoMock) Demote(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.DemoteFunc == nil {
		panic("questionRepoMock.DemoteFunc: method is nil but questionRepo.Demote was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDemote.Lock()
	mock.calls.Demote = append(mock.calls.Demote, callInfo)
	mock.lockDemote.Unlock()
	return mock.DemoteFunc(ctx, id)
}

// DemoteCalls gets all the calls that were made to Demote.
func (mock *questionRepoMock) DemoteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDemote.RLock()
	calls = mock.calls.Demote
	mock.lockDemote.RUnlock()
	return calls
}

func (mock *questionRepoMock) ReplaceLinks(ctx context.Context, questionID uuid.UUID, topicIDs []uuid.UUID) error {
	if mock.ReplaceLinksFunc == nil {
		panic("questionRepoMock.ReplaceLinksFunc: method is nil but questionRepo.ReplaceLinks was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		QuestionID uuid.UUID
		TopicIDs   []uuid.UUID
	}{
		Ctx:        ctx,
		QuestionID: questionID,
		TopicIDs:   topicIDs,
	}
	mock.lockReplaceLinks.Lock()
	mock.calls.ReplaceLinks = append(mock.calls.ReplaceLinks, callInfo)
	mock.lockReplaceLinks.Unlock()
	return mock.ReplaceLinksFunc(ctx, questionID, topicIDs)
}

// ReplaceLinksCalls gets all the calls that were made to ReplaceLinks.
func (mock *questionRepoMock) ReplaceLinksCalls() []struct {
	Ctx        context.Context
	QuestionID uuid.UUID
	TopicIDs   []uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		QuestionID uuid.UUID
		TopicIDs   []uuid.UUID
	}
	mock.lockReplaceLinks.RLock()
	calls = mock.calls.ReplaceLinks
	mock.lockReplaceLinks.RUnlock()
	return calls
}
