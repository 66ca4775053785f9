package server

import (
	"errors"
	"net/http"

	"github.com/DanRulev/quizroom/internal/models"
	"github.com/DanRulev/quizroom/internal/session"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type answerRequest struct {
	Option *int `json:"option"`
}

func (h *handler) openPlay(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Open(chi.URLParam(r, "id"), userFrom(r))
	if errors.Is(err, models.ErrQuizNotFound) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.writeSnapshot(w, snap, err)
}

func (h *handler) abandonPlay(w http.ResponseWriter, r *http.Request) {
	h.svc.Discard()
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) startPlay(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Start(chi.URLParam(r, "id"))
	h.writeSnapshot(w, snap, err)
}

func (h *handler) answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := decode(r, &req); err != nil || req.Option == nil {
		writeError(w, http.StatusBadRequest, "option is required")
		return
	}

	snap, err := h.svc.Answer(chi.URLParam(r, "id"), *req.Option)
	h.writeSnapshot(w, snap, err)
}

func (h *handler) next(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Next(chi.URLParam(r, "id"))
	h.writeSnapshot(w, snap, err)
}

func (h *handler) previous(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Previous(chi.URLParam(r, "id"))
	h.writeSnapshot(w, snap, err)
}

func (h *handler) finish(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Finish(chi.URLParam(r, "id"))
	h.writeSnapshot(w, snap, err)
}

func (h *handler) writeSnapshot(w http.ResponseWriter, snap session.Snapshot, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, snap)
	case errors.Is(err, models.ErrNoActiveSession),
		errors.Is(err, session.ErrNotInProgress),
		errors.Is(err, session.ErrAlreadyStarted):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.log.Warn("play action failed", zap.String("quiz_id", snap.QuizID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save attempt")
	}
}
