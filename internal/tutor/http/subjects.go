package http

import (
	"net/http"

	"github.com/edunest/tutord/internal/tutor/service"
	"github.com/edunest/tutord/pkg/httpx"
	"github.com/edunest/tutord/pkg/slogx"
	"github.com/edunest/tutord/pkg/tutorsdk"
)

type SubjectsHandler struct {
	SubjectsService *service.SubjectsService
}

// ServeHTTP godoc
//
//	@Summary		Subjects Endpoint
//	@Description	Lists the subjects available to ask about.
//	@Tags			Chat
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	tutorsdk.SubjectsResponse	"subjects"
//	@Failure		401	{object}	tutorsdk.ErrorResponse		"error"
//	@Failure		500	{object}	tutorsdk.ErrorResponse		"error"
//	@Router			/api/subjects [get].
func (h *SubjectsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	subjects, err := h.SubjectsService.List(ctx)
	if err != nil {
		log.Error("failed to list subjects", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "failed to list subjects")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tutorsdk.SubjectsResponse{Subjects: subjects})
}
