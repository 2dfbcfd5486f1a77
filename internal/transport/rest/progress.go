package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
	"github.com/heartmarshall/interviewprep-backend/internal/service/progress"
)

type progressService interface {
	List(ctx context.Context) ([]domain.QuestionProgress, error)
	Update(ctx context.Context, input progress.UpdateInput) (*domain.QuestionProgress, error)
}

// ProgressHandler serves per-question study progress.
type ProgressHandler struct {
	svc progressService
	log *slog.Logger
}

func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress")}
}

type progressRequest struct {
	QuestionSlug string `json:"questionSlug"`
	Status       string `json:"status"`
}

type progressResponse struct {
	QuestionSlug string    `json:"questionSlug"`
	Status       string    `json:"status"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toProgressResponse(p domain.QuestionProgress) progressResponse {
	return progressResponse{QuestionSlug: p.QuestionSlug, Status: p.Status.String(), UpdatedAt: p.UpdatedAt}
}

// List handles GET /api/progress.
func (h *ProgressHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]progressResponse, 0, len(records))
	for _, p := range records {
		resp = append(resp, toProgressResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles POST /api/progress.
func (h *ProgressHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req progressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.Update(r.Context(), progress.UpdateInput{
		QuestionSlug: req.QuestionSlug,
		Status:       domain.ProgressStatus(req.Status),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProgressResponse(*p))
}
