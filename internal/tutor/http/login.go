package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edunest/tutord/internal/tutor/service"
	"github.com/edunest/tutord/pkg/httpx"
	"github.com/edunest/tutord/pkg/slogx"
	"github.com/edunest/tutord/pkg/tutorsdk"
)

type LoginHandler struct {
	UserService    *service.UserService
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticates a username/password pair and issues a fresh session token.
//	@Description	Any previously issued token for the user is invalidated immediately.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tutorsdk.CredentialsRequest	true	"Username and password"
//	@Success		200		{object}	tutorsdk.AuthResponse		"token, user"
//	@Failure		400		{object}	tutorsdk.ErrorResponse		"error"
//	@Failure		401		{object}	tutorsdk.ErrorResponse		"error"
//	@Failure		500		{object}	tutorsdk.ErrorResponse		"error"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tutorsdk.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	token, err := h.UserService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same response whether the username or the password was wrong.
			httpx.WriteError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		log.Error("failed to authenticate user", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	user, err := h.SessionService.Verify(ctx, token)
	if err != nil {
		log.Error("failed to resolve freshly issued token", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tutorsdk.AuthResponse{
		Token: token,
		User:  toUserInfo(user),
	})
}
