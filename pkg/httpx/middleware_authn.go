package httpx

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/edunest/tutord/pkg/slogx"
)

// Identity is the resolved owner of a bearer token.
type Identity struct {
	UserID      int64
	Username    string
	DisplayName string
	CreatedAt   time.Time
}

// TokenVerifier resolves an opaque bearer token to the identity it belongs to.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (Identity, error)
}

// AuthnMiddleware requires a valid bearer token and attaches the resolved
// identity to the request context.
func AuthnMiddleware(v TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			token := BearerToken(r)
			if token == "" {
				writeBearerError(w, "missing bearer token")
				return
			}

			id, err := v.VerifyToken(ctx, token)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				writeBearerError(w, "invalid bearer token")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, id.UserID)
			ctx = context.WithValue(ctx, CtxKeyIdentity, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from an Authorization: Bearer header.
// Returns "" when the header is absent or not a bearer scheme.
func BearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, "unauthorized")
}
