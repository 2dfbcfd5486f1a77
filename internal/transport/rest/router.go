package rest

import (
	"net/http"

	"github.com/heartmarshall/interviewprep-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Catalog     *CatalogHandler
	Content     *ContentHandler
	Compose     *ComposeHandler
	Preferences *PreferencesHandler
	Playlists   *PlaylistHandler
	Progress    *ProgressHandler
}

// RouterOptions carries the per-route middleware. Nil limiters disable
// rate limiting for their routes.
type RouterOptions struct {
	ComposeLimiter *middleware.RateLimiter
	LoginLimiter   *middleware.RateLimiter
}

// NewRouter registers all API routes. Global middleware (recovery, request
// id, logging, CORS, auth) is applied by the caller around the returned mux.
func NewRouter(h Handlers, opts RouterOptions) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	login := limited(opts.LoginLimiter)
	mux.Handle("POST /api/auth/login", login(http.HandlerFunc(h.Auth.Login)))
	mux.Handle("POST /api/auth/register", login(http.HandlerFunc(h.Auth.Register)))

	mux.HandleFunc("GET /api/catalog", h.Catalog.Tree)
	mux.HandleFunc("GET /api/questions", h.Catalog.ListQuestions)
	mux.HandleFunc("GET /api/questions/{slug}", h.Catalog.Question)

	mux.HandleFunc("GET /api/user/preferences", h.Preferences.UserPreferences)
	mux.HandleFunc("POST /api/user/preferences", h.Preferences.UserPreferences)
	mux.HandleFunc("GET /api/account/preferences", h.Preferences.AccountPreferences)
	mux.HandleFunc("POST /api/account/preferences", h.Preferences.AccountPreferences)

	mux.HandleFunc("GET /api/playlists", h.Playlists.List)
	mux.HandleFunc("POST /api/playlists", h.Playlists.Create)
	mux.HandleFunc("DELETE /api/playlists/{id}", h.Playlists.Delete)
	mux.HandleFunc("POST /api/playlists/{id}/items", h.Playlists.AddItem)
	mux.HandleFunc("DELETE /api/playlists/{id}/items/{questionSlug}", h.Playlists.RemoveItem)

	mux.HandleFunc("GET /api/progress", h.Progress.List)
	mux.HandleFunc("POST /api/progress", h.Progress.Update)

	editor := middleware.RequireEditor()
	compose := middleware.Chain(editor, limited(opts.ComposeLimiter))
	mux.Handle("POST /api/admin/content-package", editor(http.HandlerFunc(h.Content.ContentPackage)))
	mux.Handle("POST /api/admin/topics", editor(http.HandlerFunc(h.Content.CreateTopic)))
	mux.Handle("POST /api/admin/ai-compose", compose(http.HandlerFunc(h.Compose.Compose)))
	mux.Handle("GET /api/admin/ai-compose/templates", editor(http.HandlerFunc(h.Compose.Templates)))

	return mux
}

func limited(rl *middleware.RateLimiter) middleware.Middleware {
	if rl == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return rl.Limit()
}
