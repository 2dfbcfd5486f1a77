package compose

import (
	"context"
	"sync"

	"github.com/heartmarshall/interviewprep-backend/internal/adapter/provider/llm"
)

var _ completer = &completerMock{}

type completerMock struct {
	CompleteJSONFunc func(ctx context.Context, req llm.Request, out any) error

	calls struct {
		CompleteJSON []struct {
			Ctx context.Context
			Req llm.Request
			Out any
		}
	}
	lockCompleteJSON sync.RWMutex
}

func (mock *completerMock) CompleteJSON(ctx context.Context, req llm.Request, out any) error {
	if mock.CompleteJSONFunc == nil {
		panic("completerMock.CompleteJSONFunc: method is nil but completer.CompleteJSON was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req llm.Request
		Out any
	}{
		Ctx: ctx,
		Req: req,
		Out: out,
	}
	mock.lockCompleteJSON.Lock()
	mock.calls.CompleteJSON = append(mock.calls.CompleteJSON, callInfo)
	mock.lockCompleteJSON.Unlock()
	return mock.CompleteJSONFunc(ctx, req, out)
}

// CompleteJSONCalls gets all the calls that were made to CompleteJSON.
func (mock *completerMock) CompleteJSONCalls() []struct {
	Ctx context.Context
	Req llm.Request
	Out any
} {
	var calls []struct {
		Ctx context.Context
		Req llm.Request
		Out any
	}
	mock.lockCompleteJSON.RLock()
	calls = mock.calls.CompleteJSON
	mock.lockCompleteJSON.RUnlock()
	return calls
}
