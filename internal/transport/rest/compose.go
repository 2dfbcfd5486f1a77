package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
	"github.com/heartmarshall/interviewprep-backend/internal/service/compose"
	"github.com/heartmarshall/interviewprep-backend/internal/service/content"
	"github.com/heartmarshall/interviewprep-backend/internal/transport/middleware"
)

type composeService interface {
	SuggestTopics(ctx context.Context, auth domain.AuthContext, input compose.SuggestTopicsInput) (*compose.SuggestTopicsResult, error)
	ResolveTemplate(ctx context.Context, auth domain.AuthContext, input compose.ResolveTemplateInput) (*compose.ResolveTemplateResult, error)
	GenerateAnswer(ctx context.Context, auth domain.AuthContext, input compose.GenerateAnswerInput) (*compose.GenerateAnswerResult, error)
	SaveDraft(ctx context.Context, auth domain.AuthContext, input content.SaveDraftInput) (*content.SaveDraftResult, error)
}

// ComposeHandler serves the AI-assisted composer.
type ComposeHandler struct {
	svc composeService
	log *slog.Logger
}

func NewComposeHandler(svc composeService, logger *slog.Logger) *ComposeHandler {
	return &ComposeHandler{svc: svc, log: logger.With("handler", "compose")}
}

type draftRequest struct {
	Title          string `json:"title"`
	Summary        string `json:"summary"`
	AnswerMarkdown string `json:"answerMarkdown"`
}

func (r draftRequest) toDraft() compose.QuestionDraft {
	return compose.QuestionDraft{Title: r.Title, Summary: r.Summary, AnswerMarkdown: r.AnswerMarkdown}
}

type generateAnswerRequest struct {
	draftRequest
	Template   string   `json:"template"`
	TopicSlugs []string `json:"topicSlugs"`
}

type topicSuggestionResponse struct {
	Slug            string `json:"slug"`
	Name            string `json:"name"`
	SubcategorySlug string `json:"subcategorySlug"`
	Reason          string `json:"reason,omitempty"`
}

type suggestTopicsResponse struct {
	Suggestions []topicSuggestionResponse `json:"suggestions"`
	NewTopic    *createTopicRequest       `json:"newTopic"`
	Warnings    []string                  `json:"warnings"`
}

type templateResponse struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Sections []string `json:"sections"`
}

type resolveTemplateResponse struct {
	Template templateResponse `json:"template"`
	Reason   string           `json:"reason"`
}

type generateAnswerResponse struct {
	AnswerMarkdown string `json:"answerMarkdown"`
	Summary        string `json:"summary"`
}

func toTemplateResponse(t compose.AnswerTemplate) templateResponse {
	return templateResponse{Key: t.Key, Name: t.Name, Sections: nonNil(t.Sections)}
}

// Compose handles POST /api/admin/ai-compose.
func (h *ComposeHandler) Compose(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ctx := r.Context()
	auth := middleware.AuthContextFromCtx(ctx)

	var (
		resp any
		err  error
	)
	switch req.Action {
	case "suggest_topics":
		resp, err = h.suggestTopics(ctx, auth, req)
	case "resolve_template":
		resp, err = h.resolveTemplate(ctx, auth, req)
	case "generate_answer":
		resp, err = h.generateAnswer(ctx, auth, req)
	case "save_draft":
		var data saveDraftRequest
		if err = decodeData(req.Data, &data); err == nil {
			var res *content.SaveDraftResult
			if res, err = h.svc.SaveDraft(ctx, auth, data.toInput()); err == nil {
				resp = toSaveDraftResponse(res)
			}
		}
	default:
		err = domain.NewValidationError("action", "must be one of suggest_topics, resolve_template, generate_answer, save_draft")
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Templates handles GET /api/admin/ai-compose/templates.
func (h *ComposeHandler) Templates(w http.ResponseWriter, r *http.Request) {
	templates := compose.Templates()
	resp := make([]templateResponse, 0, len(templates))
	for _, t := range templates {
		resp = append(resp, toTemplateResponse(t))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ComposeHandler) suggestTopics(ctx context.Context, auth domain.AuthContext, req actionRequest) (any, error) {
	var data draftRequest
	if err := decodeData(req.Data, &data); err != nil {
		return nil, err
	}
	res, err := h.svc.SuggestTopics(ctx, auth, compose.SuggestTopicsInput{QuestionDraft: data.toDraft()})
	if err != nil {
		return nil, err
	}

	resp := suggestTopicsResponse{
		Suggestions: make([]topicSuggestionResponse, 0, len(res.Suggestions)),
		Warnings:    nonNil(res.Warnings),
	}
	for _, s := range res.Suggestions {
		resp.Suggestions = append(resp.Suggestions, topicSuggestionResponse{
			Slug:            s.Slug,
			Name:            s.Name,
			SubcategorySlug: s.SubcategorySlug,
			Reason:          s.Reason,
		})
	}
	if res.NewTopic != nil {
		resp.NewTopic = &createTopicRequest{
			Name:             res.NewTopic.Name,
			ShortDescription: res.NewTopic.ShortDescription,
			SubcategorySlug:  res.NewTopic.SubcategorySlug,
			Slug:             res.NewTopic.Slug,
			Publish:          res.NewTopic.Publish,
		}
	}
	return resp, nil
}

func (h *ComposeHandler) resolveTemplate(ctx context.Context, auth domain.AuthContext, req actionRequest) (any, error) {
	var data draftRequest
	if err := decodeData(req.Data, &data); err != nil {
		return nil, err
	}
	res, err := h.svc.ResolveTemplate(ctx, auth, compose.ResolveTemplateInput{QuestionDraft: data.toDraft()})
	if err != nil {
		return nil, err
	}
	return resolveTemplateResponse{Template: toTemplateResponse(res.Template), Reason: res.Reason}, nil
}

func (h *ComposeHandler) generateAnswer(ctx context.Context, auth domain.AuthContext, req actionRequest) (any, error) {
	var data generateAnswerRequest
	if err := decodeData(req.Data, &data); err != nil {
		return nil, err
	}
	res, err := h.svc.GenerateAnswer(ctx, auth, compose.GenerateAnswerInput{
		QuestionDraft: data.toDraft(),
		TemplateKey:   data.Template,
		TopicSlugs:    data.TopicSlugs,
	})
	if err != nil {
		return nil, err
	}
	return generateAnswerResponse{AnswerMarkdown: res.AnswerMarkdown, Summary: res.Summary}, nil
}
