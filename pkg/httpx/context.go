package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID   ctxKey = "user_id"
	CtxKeyIdentity ctxKey = "identity"
)

// UserIDFromContext returns the authenticated user id, or 0 when the request
// was not authenticated.
func UserIDFromContext(ctx context.Context) int64 {
	if v, ok := ctx.Value(CtxKeyUserID).(int64); ok {
		return v
	}
	return 0
}

// IdentityFromContext returns the authenticated identity attached by
// AuthnMiddleware, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	v, ok := ctx.Value(CtxKeyIdentity).(Identity)
	return v, ok
}
