package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-video-dashboard/internal/errors"
	"github.com/pribylovaa/go-video-dashboard/internal/service"
)

// UpdateVideoRequest — тело PUT /video.
type UpdateVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GetVideo — GET /video: живое чтение с платформы (кэш — побочный эффект).
func (h *Handlers) GetVideo(w http.ResponseWriter, r *http.Request) {
	video, err := h.Svc.VideoState(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, video)
}

// UpdateVideo — PUT /video: правка title/description.
func (h *Handlers) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	var in UpdateVideoRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	video, err := h.Svc.UpdateVideo(r.Context(), service.UpdateVideoInput{
		Title:       in.Title,
		Description: in.Description,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, video)
}
