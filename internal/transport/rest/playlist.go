package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
	"github.com/heartmarshall/interviewprep-backend/internal/service/playlist"
)

type playlistService interface {
	ListPlaylists(ctx context.Context) ([]domain.Playlist, error)
	CreatePlaylist(ctx context.Context, input playlist.CreatePlaylistInput) (*domain.Playlist, error)
	DeletePlaylist(ctx context.Context, playlistID uuid.UUID) error
	AddItem(ctx context.Context, input playlist.ItemInput) error
	RemoveItem(ctx context.Context, input playlist.ItemInput) error
}

// PlaylistHandler serves the reader's playlists.
type PlaylistHandler struct {
	svc playlistService
	log *slog.Logger
}

func NewPlaylistHandler(svc playlistService, logger *slog.Logger) *PlaylistHandler {
	return &PlaylistHandler{svc: svc, log: logger.With("handler", "playlist")}
}

type createPlaylistRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type addItemRequest struct {
	QuestionSlug string `json:"questionSlug"`
}

type playlistItemResponse struct {
	QuestionSlug  string    `json:"questionSlug"`
	QuestionTitle string    `json:"questionTitle"`
	AddedAt       time.Time `json:"addedAt"`
}

type playlistResponse struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description *string                `json:"description"`
	CreatedAt   time.Time              `json:"createdAt"`
	Items       []playlistItemResponse `json:"items"`
}

func toPlaylistResponse(p domain.Playlist) playlistResponse {
	resp := playlistResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		Items:       make([]playlistItemResponse, 0, len(p.Items)),
	}
	for _, it := range p.Items {
		resp.Items = append(resp.Items, playlistItemResponse{
			QuestionSlug:  it.QuestionSlug,
			QuestionTitle: it.QuestionTitle,
			AddedAt:       it.AddedAt,
		})
	}
	return resp
}

// List handles GET /api/playlists.
func (h *PlaylistHandler) List(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.svc.ListPlaylists(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]playlistResponse, 0, len(playlists))
	for _, p := range playlists {
		resp = append(resp, toPlaylistResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/playlists.
func (h *PlaylistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPlaylistRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.CreatePlaylist(r.Context(), playlist.CreatePlaylistInput{Name: req.Name, Description: req.Description})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPlaylistResponse(*p))
}

// Delete handles DELETE /api/playlists/{id}.
func (h *PlaylistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := playlistIDFromPath(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeletePlaylist(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /api/playlists/{id}/items.
func (h *PlaylistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, err := playlistIDFromPath(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req addItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.AddItem(r.Context(), playlist.ItemInput{PlaylistID: id, QuestionSlug: req.QuestionSlug}); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/playlists/{id}/items/{questionSlug}.
func (h *PlaylistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := playlistIDFromPath(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := playlist.ItemInput{PlaylistID: id, QuestionSlug: r.PathValue("questionSlug")}
	if err := h.svc.RemoveItem(r.Context(), input); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func playlistIDFromPath(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}
