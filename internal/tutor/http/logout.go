package http

import (
	"net/http"

	"github.com/edunest/tutord/internal/tutor/service"
	"github.com/edunest/tutord/pkg/httpx"
	"github.com/edunest/tutord/pkg/slogx"
	"github.com/edunest/tutord/pkg/tutorsdk"
)

// LogoutHandler serves POST /api/logout. It reads the bearer token directly
// instead of going through the authn middleware: logout is idempotent and
// returns 200 OK even for missing, unknown, or already-cleared tokens, so an
// expired session can still "log out" cleanly.
type LogoutHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Logout Endpoint
//	@Description	Invalidates the bearer token, ending the session.
//	@Description	Idempotent: returns 200 OK even for missing or unknown tokens.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	tutorsdk.MessageResponse	"message"
//	@Router			/api/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := httpx.BearerToken(r)
	if err := h.SessionService.Invalidate(ctx, token); err != nil {
		// Still 200: the client's token is gone from its point of view, and a
		// storage hiccup here should not make logout look like it failed.
		log.Warn("failed to clear session token", "err", err)
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tutorsdk.MessageResponse{Message: "logged out"})
}
