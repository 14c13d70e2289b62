package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-video-dashboard/internal/errors"
)

// CreateNoteRequest — тело POST /notes.
type CreateNoteRequest struct {
	Content string `json:"content"`
}

// ListNotes — GET /notes: заметки сконфигурированного видео.
func (h *Handlers) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.Svc.Notes(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

// CreateNote — POST /notes.
func (h *Handlers) CreateNote(w http.ResponseWriter, r *http.Request) {
	var in CreateNoteRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	note, err := h.Svc.AddNote(r.Context(), in.Content)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

// DeleteNote — DELETE /notes/{id}.
func (h *Handlers) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.Svc.DeleteNote(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
