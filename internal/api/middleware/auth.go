package middleware

import (
	"context"
	"net/http"

	"github.com/vitrineapp/VA-BookingService/internal/api/handlers"
)

type userIDKey struct{}

// Auth requires the X-User-ID identity header set by the platform gateway.
// Session handling itself happens upstream; this service only needs the
// caller's identity.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing X-User-ID header")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey{}, userID)))
	})
}

// UserID extracts the authenticated user id placed by Auth.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}
