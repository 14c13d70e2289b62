package handlers

import (
	"net/http"
	"strconv"

	apierrors "github.com/pribylovaa/go-video-dashboard/internal/errors"
)

// ListEvents — GET /event-logs?limit=N: журнал аудита, новые первыми.
func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	var limit int32

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			apierrors.WriteError(w, r, errInvalidArgument())
			return
		}

		limit = int32(n)
	}

	events, err := h.Svc.Events(r.Context(), limit)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, events)
}
