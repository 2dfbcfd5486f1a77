package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
	"github.com/heartmarshall/interviewprep-backend/internal/service/user"
)

type userService interface {
	GetUserPreferences(ctx context.Context) (*domain.UserPreferences, error)
	UpdateUserPreferences(ctx context.Context, input user.UpdateUserPreferencesInput) (*domain.UserPreferences, error)
	GetAccountPreferences(ctx context.Context) (*domain.AccountPreferences, error)
	UpdateAccountPreferences(ctx context.Context, input user.UpdateAccountPreferencesInput) (*domain.AccountPreferences, error)
}

// PreferencesHandler serves user and account preference endpoints.
type PreferencesHandler struct {
	svc userService
	log *slog.Logger
}

func NewPreferencesHandler(svc userService, logger *slog.Logger) *PreferencesHandler {
	return &PreferencesHandler{svc: svc, log: logger.With("handler", "preferences")}
}

type userPreferencesRequest struct {
	Theme                *string `json:"theme"`
	ShowAnswersByDefault *bool   `json:"showAnswersByDefault"`
	DailyGoal            *int    `json:"dailyGoal"`
}

type userPreferencesResponse struct {
	Theme                string    `json:"theme"`
	ShowAnswersByDefault bool      `json:"showAnswersByDefault"`
	DailyGoal            int       `json:"dailyGoal"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

type accountPreferencesRequest struct {
	DisplayName *string `json:"displayName"`
	EmailOptIn  *bool   `json:"emailOptIn"`
}

type accountPreferencesResponse struct {
	DisplayName string    `json:"displayName"`
	EmailOptIn  bool      `json:"emailOptIn"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toUserPreferencesResponse(p *domain.UserPreferences) userPreferencesResponse {
	return userPreferencesResponse{
		Theme:                p.Theme.String(),
		ShowAnswersByDefault: p.ShowAnswersByDefault,
		DailyGoal:            p.DailyGoal,
		UpdatedAt:            p.UpdatedAt,
	}
}

// UserPreferences handles GET and POST /api/user/preferences.
func (h *PreferencesHandler) UserPreferences(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		prefs, err := h.svc.GetUserPreferences(r.Context())
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserPreferencesResponse(prefs))
		return
	}

	var req userPreferencesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := user.UpdateUserPreferencesInput{
		ShowAnswersByDefault: req.ShowAnswersByDefault,
		DailyGoal:            req.DailyGoal,
	}
	if req.Theme != nil {
		theme := domain.Theme(*req.Theme)
		input.Theme = &theme
	}

	prefs, err := h.svc.UpdateUserPreferences(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserPreferencesResponse(prefs))
}

// AccountPreferences handles GET and POST /api/account/preferences.
func (h *PreferencesHandler) AccountPreferences(w http.ResponseWriter, r *http.Request) {
	var (
		prefs *domain.AccountPreferences
		err   error
	)
	if r.Method == http.MethodGet {
		prefs, err = h.svc.GetAccountPreferences(r.Context())
	} else {
		var req accountPreferencesRequest
		if err = decodeJSON(w, r, &req); err == nil {
			prefs, err = h.svc.UpdateAccountPreferences(r.Context(), user.UpdateAccountPreferencesInput{
				DisplayName: req.DisplayName,
				EmailOptIn:  req.EmailOptIn,
			})
		}
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, accountPreferencesResponse{
		DisplayName: prefs.DisplayName,
		EmailOptIn:  prefs.EmailOptIn,
		UpdatedAt:   prefs.UpdatedAt,
	})
}
