package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/interviewprep-backend/internal/config"
)

// CORS answers preflight requests and sets Access-Control headers for allowed
// origins. An origin entry may be "*", an exact origin, or a subdomain
// pattern such as "https://*.example.com". The matched origin is always
// echoed back so credentialed requests keep working with "*".
func CORS(cfg config.CORSConfig) Middleware {
	allowed := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" && allowed.match(origin) {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", requestIDHeader+", Retry-After")
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type originSet struct {
	any      bool
	exact    map[string]bool
	suffixes []originSuffix
}

type originSuffix struct {
	scheme string
	domain string
}

func parseOrigins(list string) originSet {
	set := originSet{exact: make(map[string]bool)}
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		switch {
		case o == "":
		case o == "*":
			set.any = true
		case strings.Contains(o, "://*."):
			scheme, rest, _ := strings.Cut(o, "://*")
			set.suffixes = append(set.suffixes, originSuffix{scheme: scheme + "://", domain: rest})
		default:
			set.exact[o] = true
		}
	}
	return set
}

func (s originSet) match(origin string) bool {
	if s.any || s.exact[origin] {
		return true
	}
	for _, sfx := range s.suffixes {
		host, ok := strings.CutPrefix(origin, sfx.scheme)
		if ok && strings.HasSuffix(host, sfx.domain) && len(host) > len(sfx.domain) {
			return true
		}
	}
	return false
}
