package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
	"github.com/heartmarshall/interviewprep-backend/internal/service/compose"
	"github.com/heartmarshall/interviewprep-backend/internal/service/content"
)

var _ composeService = &composeServiceMock{}

type composeServiceMock struct {
	SuggestTopicsFunc   func(ctx context.Context, auth domain.AuthContext, input compose.SuggestTopicsInput) (*compose.SuggestTopicsResult, error)
	ResolveTemplateFunc func(ctx context.Context, auth domain.AuthContext, input compose.ResolveTemplateInput) (*compose.ResolveTemplateResult, error)
	GenerateAnswerFunc  func(ctx context.Context, auth domain.AuthContext, input compose.GenerateAnswerInput) (*compose.GenerateAnswerResult, error)
	SaveDraftFunc       func(ctx context.Context, auth domain.AuthContext, input content.SaveDraftInput) (*content.SaveDraftResult, error)

	calls struct {
		SuggestTopics []struct {
			Ctx   context.Context
			Auth  domain.AuthContext
			Input compose.SuggestTopicsInput
		}
		ResolveTemplate []struct {
			Ctx   context.Context
			Auth  domain.AuthContext
			Input compose.ResolveTemplateInput
		}
		GenerateAnswer []struct {
			Ctx   context.Context
			Auth  domain.AuthContext
			Input compose.GenerateAnswerInput
		}
		SaveDraft []struct {
			Ctx   context.Context
			Auth  domain.AuthContext
			Input content.SaveDraftInput
		}
	}
	lockSuggestTopics   sync.RWMutex
	lockResolveTemplate sync.RWMutex
	lockGenerateAnswer  sync.RWMutex
	lockSaveDraft       sync.RWMutex
}

func (mock *composeServiceMock) SuggestTopics(ctx context.Context, auth domain.AuthContext, input compose.SuggestTopicsInput) (*compose.SuggestTopicsResult, error) {
	if mock.SuggestTopicsFunc == nil {
		panic("composeServiceMock.SuggestTopicsFunc: method is nil but composeService.SuggestTopics was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Auth  domain.AuthContext
		Input compose.SuggestTopicsInput
	}{
		Ctx:   ctx,
		Auth:  auth,
		Input: input,
	}
	mock.lockSuggestTopics.Lock()
	mock.calls.SuggestTopics = append(mock.calls.SuggestTopics, callInfo)
	mock.lockSuggestTopics.Unlock()
	return mock.SuggestTopicsFunc(ctx, auth, input)
}

// SuggestTopicsCalls gets all the calls that were made to SuggestTopics.
func (mock *composeServiceMock) SuggestTopicsCalls() []struct {
	Ctx   context.Context
	Auth  domain.AuthContext
	Input compose.SuggestTopicsInput
} {
	var calls []struct {
		Ctx   context.Context
		Auth  domain.AuthContext
		Input compose.SuggestTopicsInput
	}
	mock.lockSuggestTopics.RLock()
	calls = mock.calls.SuggestTopics
	mock.lockSuggestTopics.RUnlock()
	return calls
}

func (mock *composeServiceMock) ResolveTemplate(ctx context.Context, auth domain.AuthContext, input compose.ResolveTemplateInput) (*compose.ResolveTemplateResult, error) {
	if mock.ResolveTemplateFunc == nil {
		panic("composeServiceMock.ResolveTemplateFunc: method is nil but composeService.ResolveTemplate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Auth  domain.AuthContext
		Input compose.ResolveTemplateInput
	}{
		Ctx:   ctx,
		Auth:  auth,
		Input: input,
	}
	mock.lockResolveTemplate.Lock()
	mock.calls.ResolveTemplate = append(mock.calls.ResolveTemplate, callInfo)
	mock.lockResolveTemplate.Unlock()
	return mock.ResolveTemplateFunc(ctx, auth, input)
}

// ResolveTemplateCalls gets all the calls that were made to ResolveTemplate.
func (mock *composeServiceMock) ResolveTemplateCalls() []struct {
	Ctx   context.Context
	Auth  domain.AuthContext
	Input compose.ResolveTemplateInput
} {
	var calls []struct {
		Ctx   context.Context
		Auth  domain.AuthContext
		Input compose.ResolveTemplateInput
	}
	mock.lockResolveTemplate.RLock()
	calls = mock.calls.ResolveTemplate
	mock.lockResolveTemplate.RUnlock()
	return calls
}

func (mock *composeServiceMock) GenerateAnswer(ctx context.Context, auth domain.AuthContext, input compose.GenerateAnswerInput) (*compose.GenerateAnswerResult, error) {
	if mock.GenerateAnswerFunc == nil {
		panic("composeServiceMock.GenerateAnswerFunc: method is nil but composeService.GenerateAnswer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Auth  domain.AuthContext
		Input compose.GenerateAnswerInput
	}{
		Ctx:   ctx,
		Auth:  auth,
		Input: input,
	}
	mock.lockGenerateAnswer.Lock()
	mock.calls.GenerateAnswer = append(mock.calls.GenerateAnswer, callInfo)
	mock.lockGenerateAnswer.Unlock()
	return mock.GenerateAnswerFunc(ctx, auth, input)
}

// GenerateAnswerCalls gets all the calls that were made to GenerateAnswer.
func (mock *composeServiceMock) GenerateAnswerCalls() []struct {
	Ctx   context.Context
	Auth  domain.AuthContext
	Input compose.GenerateAnswerInput
} {
	var calls []struct {
		Ctx   context.Context
		Auth  domain.AuthContext
		Input compose.GenerateAnswerInput
	}
	mock.lockGenerateAnswer.RLock()
	calls = mock.calls.GenerateAnswer
	mock.lockGenerateAnswer.RUnlock()
	return calls
}

func (mock *composeServiceMock) SaveDraft(ctx context.Context, auth domain.AuthContext, input content.SaveDraftInput) (*content.SaveDraftResult, error) {
	if mock.SaveDraftFunc == nil {
		panic("composeServiceMock.SaveDraftFunc: method is nil but composeService.SaveDraft was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Auth  domain.AuthContext
		Input content.SaveDraftInput
	}{
		Ctx:   ctx,
		Auth:  auth,
		Input: input,
	}
	mock.lockSaveDraft.Lock()
	mock.calls.SaveDraft = append(mock.calls.SaveDraft, callInfo)
	mock.lockSaveDraft.Unlock()
	return mock.SaveDraftFunc(ctx, auth, input)
}

// SaveDraftCalls gets all the calls that were made to SaveDraft.
func (mock *composeServiceMock) SaveDraftCalls() []struct {
	Ctx   context.Context
	Auth  domain.AuthContext
	Input content.SaveDraftInput
} {
	var calls []struct {
		Ctx   context.Context
		Auth  domain.AuthContext
		Input content.SaveDraftInput
	}
	mock.lockSaveDraft.RLock()
	calls = mock.calls.SaveDraft
	mock.lockSaveDraft.RUnlock()
	return calls
}
