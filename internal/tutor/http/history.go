package http

import (
	"net/http"

	"github.com/edunest/tutord/internal/tutor/domain"
	"github.com/edunest/tutord/internal/tutor/service"
	"github.com/edunest/tutord/pkg/httpx"
	"github.com/edunest/tutord/pkg/slogx"
	"github.com/edunest/tutord/pkg/tutorsdk"
)

type HistoryHandler struct {
	HistoryService *service.HistoryService

	// Limit caps how many entries one request returns; non-positive falls back
	// to the service default.
	Limit int
}

// ServeHTTP godoc
//
//	@Summary		Chat History Endpoint
//	@Description	Lists the authenticated user's recorded interactions, most recent first.
//	@Description	A storage failure degrades to an empty history rather than an error.
//	@Tags			Chat
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	tutorsdk.HistoryResponse	"history"
//	@Failure		401	{object}	tutorsdk.ErrorResponse		"error"
//	@Router			/api/history [get].
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromContext(ctx)

	entries, err := h.HistoryService.List(ctx, userID, h.Limit)
	if err != nil {
		log.Warn("could not load chat history", "user_id", userID, "err", err)
		entries = []domain.ChatEntry{}
	}

	httpx.WriteJSON(w, http.StatusOK, tutorsdk.HistoryResponse{
		History: toHistoryEntries(entries),
	})
}
