package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
	"github.com/heartmarshall/interviewprep-backend/internal/service/content"
	"github.com/heartmarshall/interviewprep-backend/internal/transport/middleware"
)

type contentService interface {
	SaveDraft(ctx context.Context, auth domain.AuthContext, input content.SaveDraftInput) (*content.SaveDraftResult, error)
	Publish(ctx context.Context, auth domain.AuthContext, input content.PublishInput) (*content.PublishResult, error)
	Unpublish(ctx context.Context, auth domain.AuthContext, input content.UnpublishInput) (*content.UnpublishResult, error)
	CreateTopic(ctx context.Context, auth domain.AuthContext, input content.CreateTopicInput) (*content.TopicResult, error)
}

// ContentHandler serves the manual composer endpoints.
type ContentHandler struct {
	svc contentService
	log *slog.Logger
}

func NewContentHandler(svc contentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, log: logger.With("handler", "content")}
}

// ---------------------------------------------------------------------------
// Request / response bodies shared with ai-compose
// ---------------------------------------------------------------------------

type createTopicRequest struct {
	Name             string `json:"name"`
	ShortDescription string `json:"shortDescription"`
	SubcategorySlug  string `json:"subcategorySlug"`
	Slug             string `json:"slug"`
	Publish          bool   `json:"publish"`
}

func (r createTopicRequest) toInput() content.CreateTopicInput {
	return content.CreateTopicInput{
		Name:             r.Name,
		ShortDescription: r.ShortDescription,
		SubcategorySlug:  r.SubcategorySlug,
		Slug:             r.Slug,
		Publish:          r.Publish,
	}
}

type saveDraftRequest struct {
	Title              string              `json:"title"`
	Summary            string              `json:"summary"`
	AnswerMarkdown     string              `json:"answerMarkdown"`
	QuestionSlug       string              `json:"questionSlug"`
	ExistingTopicSlugs []string            `json:"existingTopicSlugs"`
	CreateTopic        *createTopicRequest `json:"createTopic"`
	AllowDemote        bool                `json:"allowDemote"`
}

func (r saveDraftRequest) toInput() content.SaveDraftInput {
	in := content.SaveDraftInput{
		Title:              r.Title,
		Summary:            r.Summary,
		AnswerMarkdown:     r.AnswerMarkdown,
		QuestionSlug:       r.QuestionSlug,
		ExistingTopicSlugs: r.ExistingTopicSlugs,
		AllowDemote:        r.AllowDemote,
	}
	if r.CreateTopic != nil {
		ct := r.CreateTopic.toInput()
		in.CreateTopic = &ct
	}
	return in
}

type slugRequest struct {
	QuestionSlug string `json:"questionSlug"`
}

type saveDraftResponse struct {
	QuestionSlug   string   `json:"questionSlug"`
	TopicSlugs     []string `json:"topicSlugs"`
	CategoryLabels []string `json:"categoryLabels"`
	PreviewURL     string   `json:"previewUrl"`
	Warnings       []string `json:"warnings"`
}

func toSaveDraftResponse(res *content.SaveDraftResult) saveDraftResponse {
	return saveDraftResponse{
		QuestionSlug:   res.QuestionSlug,
		TopicSlugs:     nonNil(res.TopicSlugs),
		CategoryLabels: nonNil(res.CategoryLabels),
		PreviewURL:     res.PreviewURL,
		Warnings:       nonNil(res.Warnings),
	}
}

type publishResponse struct {
	QuestionSlug        string     `json:"questionSlug"`
	Status              string     `json:"status"`
	PublishedAt         *time.Time `json:"publishedAt"`
	PublishedTopicSlugs []string   `json:"publishedTopicSlugs"`
	AlreadyPublished    bool       `json:"alreadyPublished"`
	Warnings            []string   `json:"warnings"`
}

type unpublishResponse struct {
	QuestionSlug string `json:"questionSlug"`
	Status       string `json:"status"`
	WasPublished bool   `json:"wasPublished"`
}

type topicResponse struct {
	Slug             string     `json:"slug"`
	Name             string     `json:"name"`
	ShortDescription string     `json:"shortDescription"`
	Status           string     `json:"status"`
	PublishedAt      *time.Time `json:"publishedAt,omitempty"`
	Created          bool       `json:"created"`
	Warnings         []string   `json:"warnings"`
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

// ContentPackage handles POST /api/admin/content-package.
func (h *ContentHandler) ContentPackage(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	auth := middleware.AuthContextFromCtx(r.Context())

	switch req.Action {
	case "save_draft":
		h.saveDraft(w, r, auth, req)
	case "publish":
		var data slugRequest
		if err := decodeData(req.Data, &data); err != nil {
			handleError(w, r, h.log, err)
			return
		}
		res, err := h.svc.Publish(r.Context(), auth, content.PublishInput{QuestionSlug: data.QuestionSlug})
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, publishResponse{
			QuestionSlug:        res.QuestionSlug,
			Status:              res.Status.String(),
			PublishedAt:         res.PublishedAt,
			PublishedTopicSlugs: nonNil(res.PublishedTopicSlugs),
			AlreadyPublished:    res.AlreadyPublished,
			Warnings:            nonNil(res.Warnings),
		})
	case "unpublish":
		var data slugRequest
		if err := decodeData(req.Data, &data); err != nil {
			handleError(w, r, h.log, err)
			return
		}
		res, err := h.svc.Unpublish(r.Context(), auth, content.UnpublishInput{QuestionSlug: data.QuestionSlug})
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, unpublishResponse{
			QuestionSlug: res.QuestionSlug,
			Status:       res.Status.String(),
			WasPublished: res.WasPublished,
		})
	default:
		handleError(w, r, h.log, domain.NewValidationError("action", "must be one of save_draft, publish, unpublish"))
	}
}

func (h *ContentHandler) saveDraft(w http.ResponseWriter, r *http.Request, auth domain.AuthContext, req actionRequest) {
	var data saveDraftRequest
	if err := decodeData(req.Data, &data); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	res, err := h.svc.SaveDraft(r.Context(), auth, data.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSaveDraftResponse(res))
}

// CreateTopic handles POST /api/admin/topics.
func (h *ContentHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.CreateTopic(r.Context(), middleware.AuthContextFromCtx(r.Context()), req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	writeJSON(w, status, topicResponse{
		Slug:             res.Topic.Slug,
		Name:             res.Topic.Name,
		ShortDescription: res.Topic.ShortDescription,
		Status:           res.Topic.Status.String(),
		PublishedAt:      res.Topic.PublishedAt,
		Created:          res.Created,
		Warnings:         nonNil(res.Warnings),
	})
}

// nonNil keeps empty lists as [] rather than null in responses.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
