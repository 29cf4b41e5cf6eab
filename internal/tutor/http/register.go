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

type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Creates a new user account and logs it in, returning a session token.
//	@Description	If the account is created but a token cannot be issued, the response
//	@Description	carries a message instead and the user should log in separately.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		tutorsdk.CredentialsRequest	true	"Desired username and password"
//	@Success		201		{object}	tutorsdk.AuthResponse		"token, user (or message)"
//	@Failure		400		{object}	tutorsdk.ErrorResponse		"error"
//	@Failure		500		{object}	tutorsdk.ErrorResponse		"error"
//	@Router			/api/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req tutorsdk.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user, err := h.UserService.Register(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			httpx.WriteError(w, http.StatusBadRequest, "username and password are required")
		case errors.Is(err, service.ErrUsernameTaken):
			httpx.WriteError(w, http.StatusBadRequest, "username is already taken")
		default:
			log.Error("failed to register user", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to register user")
		}
		return
	}

	// Log the fresh account in. The account exists either way, so a token
	// failure downgrades the response rather than failing it.
	token, err := h.UserService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		log.Warn("could not auto-login new user", "user_id", user.ID, "err", err)
		httpx.WriteJSON(w, http.StatusCreated, tutorsdk.AuthResponse{
			Message: "user created, please login",
		})
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, tutorsdk.AuthResponse{
		Token: token,
		User:  toUserInfo(user),
	})
}
