package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DanRulev/quizroom/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type homeResponse struct {
	User    models.User      `json:"user"`
	Search  string           `json:"search"`
	Quizzes []models.Quiz    `json:"quizzes"`
	Stats   models.QuizStats `json:"stats"`
}

type createQuizRequest struct {
	Draft   models.QuizDraft `json:"draft"`
	Publish bool             `json:"publish"`
}

func (h *handler) home(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)
	search := r.URL.Query().Get("q")

	writeJSON(w, http.StatusOK, homeResponse{
		User:    user,
		Search:  search,
		Quizzes: h.svc.PublishedQuizzes(search),
		Stats:   h.svc.Stats(user.ID),
	})
}

func (h *handler) createQuizPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"draft": models.NewQuizDraft()})
}

func (h *handler) createQuiz(w http.ResponseWriter, r *http.Request) {
	var req createQuizRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quiz, err := h.svc.SubmitDraft(r.Context(), userFrom(r), req.Draft, req.Publish)
	if err != nil {
		var fields models.FieldErrors
		if errors.As(err, &fields) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": fields})
			return
		}
		h.log.Warn("failed to create quiz", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create quiz")
		return
	}

	writeJSON(w, http.StatusCreated, quiz)
}

func (h *handler) completed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"attempts": h.svc.History(userFrom(r).ID),
	})
}

func (h *handler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.AdminFilter{
		Search:        q.Get("q"),
		ShowDrafts:    queryBool(q.Get("drafts"), true),
		ShowPublished: queryBool(q.Get("published"), true),
	}

	writeJSON(w, http.StatusOK, h.svc.AdminQuizzes(filter))
}

func (h *handler) togglePublished(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	published, err := h.svc.TogglePublished(r.Context(), id)
	if err != nil {
		h.adminError(w, id, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": id, "published": published})
}

func (h *handler) deleteQuiz(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.DeleteQuiz(r.Context(), id); err != nil {
		h.adminError(w, id, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) adminError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, models.ErrQuizNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	h.log.Warn("admin action failed", zap.String("quiz_id", id), zap.Error(err))
	writeError(w, http.StatusInternalServerError, "failed to update quiz")
}

func queryBool(v string, def bool) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
