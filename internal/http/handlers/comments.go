package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/go-video-dashboard/internal/errors"
	"github.com/pribylovaa/go-video-dashboard/internal/service"
)

// CreateCommentRequest — тело POST /comments.
type CreateCommentRequest struct {
	Text string `json:"text"`
}

// CreateReplyRequest — тело POST /comments/{id}/reply.
type CreateReplyRequest struct {
	Text string `json:"text"`
}

// ModerateCommentRequest — тело PATCH /comments/{id}/moderation.
type ModerateCommentRequest struct {
	IsHidden bool   `json:"isHidden"`
	IsPinned bool   `json:"isPinned"`
	UserNote string `json:"userNote"`
}

// ListComments — GET /comments: живое чтение тредов с платформы.
func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.Svc.Comments(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

// CreateComment — POST /comments: публикация корневого комментария.
func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	var in CreateCommentRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	comment, err := h.Svc.PostComment(r.Context(), in.Text)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

// CreateReply — POST /comments/{id}/reply: ответ на комментарий.
func (h *Handlers) CreateReply(w http.ResponseWriter, r *http.Request) {
	parentID := chi.URLParam(r, "id")
	if parentID == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var in CreateReplyRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	reply, err := h.Svc.PostReply(r.Context(), parentID, in.Text)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, reply)
}

// ModerateComment — PATCH /comments/{id}/moderation: локальные флаги.
func (h *Handlers) ModerateComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var in ModerateCommentRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	comment, err := h.Svc.Moderate(r.Context(), id, service.ModerateInput{
		IsHidden: in.IsHidden,
		IsPinned: in.IsPinned,
		UserNote: in.UserNote,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, comment)
}

// DeleteComment — DELETE /comments/{id}.
func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := h.Svc.DeleteComment(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
