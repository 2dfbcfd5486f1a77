package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/interviewprep-backend/internal/domain"
	"github.com/heartmarshall/interviewprep-backend/pkg/ctxutil"
)

// AuthContextFromCtx builds the caller identity placed on the context by Auth.
// Anonymous requests yield a zero AuthContext.
func AuthContextFromCtx(ctx context.Context) domain.AuthContext {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.AuthContext{}
	}
	role := domain.UserRole(ctxutil.UserRoleFromCtx(ctx))
	if !role.IsValid() {
		role = domain.UserRoleMember
	}
	return domain.AuthContext{UserID: userID, Role: role}
}

// RequireEditor rejects anonymous callers with 401 and members with 403.
func RequireEditor() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := AuthContextFromCtx(r.Context())
			switch {
			case auth.IsAnonymous():
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
			case !auth.CanEditContent():
				writeJSONError(w, http.StatusForbidden, "editor or admin role required")
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
