package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5"
)

// guardrailTriggers are the database triggers that keep published questions
// linked to at least one topic. A database without them must not serve edits.
var guardrailTriggers = []string{
	"questions_require_topic_on_publish",
	"question_topics_keep_last_published_link",
}

const probeTimeout = 3 * time.Second

type dbProbe interface {
	Ping(ctx context.Context) error
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// HealthHandler serves liveness, readiness and the detailed health report.
type HealthHandler struct {
	db      dbProbe
	version string
}

func NewHealthHandler(db dbProbe, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// HealthResponse is the JSON body of /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live never touches the database.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 200 once the database is reachable and the publish guardrail
// is installed, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	report := h.check(r.Context())
	writeJSON(w, report.httpStatus(), HealthResponse{Status: report.status(), Timestamp: time.Now()})
}

// Health reports every component with its latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	report := h.check(r.Context())
	writeJSON(w, report.httpStatus(), HealthResponse{
		Status:     report.status(),
		Version:    h.version,
		Components: report,
		Timestamp:  time.Now(),
	})
}

type healthReport map[string]CompStatus

func (r healthReport) status() string {
	for _, c := range r {
		if c.Status != "ok" {
			return "down"
		}
	}
	return "ok"
}

func (r healthReport) httpStatus() int {
	if r.status() != "ok" {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func (h *HealthHandler) check(ctx context.Context) healthReport {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	report := make(healthReport, 2)

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		report["database"] = CompStatus{Status: "down"}
		report["guardrail"] = CompStatus{Status: "unknown"}
		return report
	}
	report["database"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}

	var installed int
	err := h.db.QueryRow(ctx,
		`SELECT count(*) FROM pg_trigger WHERE NOT tgisinternal AND tgname = ANY($1)`,
		guardrailTriggers,
	).Scan(&installed)
	switch {
	case err != nil:
		report["guardrail"] = CompStatus{Status: "down", Detail: "trigger lookup failed"}
	case installed < len(guardrailTriggers):
		report["guardrail"] = CompStatus{Status: "down", Detail: "publish triggers missing; run migrations"}
	default:
		report["guardrail"] = CompStatus{Status: "ok"}
	}
	return report
}
