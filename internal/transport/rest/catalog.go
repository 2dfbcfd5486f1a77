package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
)

type catalogService interface {
	Tree(ctx context.Context) ([]domain.CatalogCategory, error)
	ListQuestions(ctx context.Context, f domain.QuestionFilter) ([]domain.PublishedQuestion, error)
	GetQuestion(ctx context.Context, slug string) (*domain.QuestionDetail, error)
}

// CatalogHandler serves the public read side of the catalog.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type catalogTopicResponse struct {
	Slug             string `json:"slug"`
	Name             string `json:"name"`
	ShortDescription string `json:"shortDescription"`
}

type catalogSubcategoryResponse struct {
	Slug        string                 `json:"slug"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Topics      []catalogTopicResponse `json:"topics"`
}

type catalogCategoryResponse struct {
	Slug          string                       `json:"slug"`
	Name          string                       `json:"name"`
	Description   string                       `json:"description"`
	Subcategories []catalogSubcategoryResponse `json:"subcategories"`
}

type questionSummaryResponse struct {
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	PublishedAt *time.Time `json:"publishedAt"`
	TopicSlugs  []string   `json:"topicSlugs"`
}

type questionTopicResponse struct {
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	CategoryLabel string `json:"categoryLabel"`
}

type questionDetailResponse struct {
	Slug           string                  `json:"slug"`
	Title          string                  `json:"title"`
	Summary        string                  `json:"summary"`
	PublishedAt    *time.Time              `json:"publishedAt"`
	AnswerMarkdown *string                 `json:"answerMarkdown"`
	Topics         []questionTopicResponse `json:"topics"`
}

// Tree handles GET /api/catalog.
func (h *CatalogHandler) Tree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.svc.Tree(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]catalogCategoryResponse, 0, len(tree))
	for _, c := range tree {
		cat := catalogCategoryResponse{
			Slug:          c.Slug,
			Name:          c.Name,
			Description:   c.Description,
			Subcategories: make([]catalogSubcategoryResponse, 0, len(c.Subcategories)),
		}
		for _, sc := range c.Subcategories {
			sub := catalogSubcategoryResponse{
				Slug:        sc.Slug,
				Name:        sc.Name,
				Description: sc.Description,
				Topics:      make([]catalogTopicResponse, 0, len(sc.Topics)),
			}
			for _, t := range sc.Topics {
				sub.Topics = append(sub.Topics, catalogTopicResponse{Slug: t.Slug, Name: t.Name, ShortDescription: t.ShortDescription})
			}
			cat.Subcategories = append(cat.Subcategories, sub)
		}
		resp = append(resp, cat)
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListQuestions handles GET /api/questions?topic=&limit=&offset=.
func (h *CatalogHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.QuestionFilter{TopicSlug: q.Get("topic")}

	var errs []domain.FieldError
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "offset", Message: "must be an integer"})
		}
		filter.Offset = n
	}
	if len(errs) > 0 {
		handleError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	questions, err := h.svc.ListQuestions(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]questionSummaryResponse, 0, len(questions))
	for _, pq := range questions {
		resp = append(resp, questionSummaryResponse{
			Slug:        pq.Slug,
			Title:       pq.Title,
			Summary:     pq.Summary,
			PublishedAt: pq.PublishedAt,
			TopicSlugs:  nonNil(pq.TopicSlugs),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Question handles GET /api/questions/{slug}.
func (h *CatalogHandler) Question(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.GetQuestion(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := questionDetailResponse{
		Slug:        detail.Slug,
		Title:       detail.Title,
		Summary:     detail.Summary,
		PublishedAt: detail.PublishedAt,
		Topics:      make([]questionTopicResponse, 0, len(detail.Topics)),
	}
	if detail.Answer != nil {
		resp.AnswerMarkdown = &detail.Answer.ContentMarkdown
	}
	for _, t := range detail.Topics {
		resp.Topics = append(resp.Topics, questionTopicResponse{
			Slug:          t.TopicSlug,
			Name:          t.TopicName,
			CategoryLabel: t.CategoryLabel(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
