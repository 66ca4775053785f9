package server

import (
	"errors"
	"net/http"

	"github.com/DanRulev/quizroom/internal/models"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User     models.User `json:"user"`
	Redirect string      `json:"redirect"`
}

func (h *handler) loginPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"page": "login",
		"from": redirectTarget(r.URL.Query().Get("from")),
	})
}

func (h *handler) registerPage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"page": "register"})
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.authError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		User:     user,
		Redirect: redirectTarget(r.URL.Query().Get("from")),
	})
}

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.authError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{User: user, Redirect: "/"})
}

func (h *handler) logout(w http.ResponseWriter, r *http.Request) {
	h.svc.Discard()
	h.svc.Logout(r.Context())

	writeJSON(w, http.StatusOK, map[string]string{"redirect": "/login"})
}

func (h *handler) authError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrMissingFields):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.Warn("authentication failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to sign in")
	}
}
