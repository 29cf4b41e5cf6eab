package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/edunest/tutord/internal/tutor/domain"
	"github.com/edunest/tutord/internal/tutor/service"
	"github.com/edunest/tutord/pkg/httpx"
	"github.com/edunest/tutord/pkg/slogx"
	"github.com/edunest/tutord/pkg/tutorsdk"
)

type ChatHandler struct {
	ChatService *service.ChatService
}

// ServeHTTP godoc
//
//	@Summary		Chat Endpoint
//	@Description	Answers a question about a subject using the retrieval-augmented answer engine.
//	@Description	The interaction is recorded in the user's history and video suggestions are
//	@Description	attached when a video search backend is configured.
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		tutorsdk.ChatRequest	true	"Question and subject"
//	@Success		200		{object}	tutorsdk.ChatResponse	"answer, sources, videos, subject"
//	@Failure		400		{object}	tutorsdk.ErrorResponse	"error"
//	@Failure		401		{object}	tutorsdk.ErrorResponse	"error"
//	@Failure		500		{object}	tutorsdk.ErrorResponse	"error"
//	@Router			/api/chat [post].
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := httpx.IdentityFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req tutorsdk.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	user := domain.User{
		ID:          id.UserID,
		Username:    id.Username,
		DisplayName: id.DisplayName,
	}

	entry, err := h.ChatService.Ask(ctx, user, req.Query, req.Subject)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingQuery):
			httpx.WriteError(w, http.StatusBadRequest, "query is required")
		case errors.Is(err, service.ErrMissingSubject):
			httpx.WriteError(w, http.StatusBadRequest, "subject is required")
		default:
			log.Error("failed to answer question", "user_id", id.UserID, "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to generate an answer")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tutorsdk.ChatResponse{
		Answer:  entry.Answer,
		Sources: toSources(entry.Sources),
		Videos:  toVideos(entry.Videos),
		Subject: entry.Subject,
	})
}
