package server

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

type ctxKey struct{}

// requireUser sends anonymous visitors to the login page, remembering where
// they were going.
func (h *handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := h.svc.CurrentUser()
		if !ok {
			target := "/login?from=" + url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !userFrom(r).IsAdmin {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// publicOnly sends signed-in users back to where they came from.
func (h *handler) publicOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := h.svc.CurrentUser(); ok {
			http.Redirect(w, r, redirectTarget(r.URL.Query().Get("from")), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// leavePlay drops an unfinished play session when any other page is visited.
func (h *handler) leavePlay(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.svc.Discard()
		next.ServeHTTP(w, r)
	})
}

// redirectTarget accepts only local paths.
func redirectTarget(from string) string {
	if from == "" || !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || strings.HasPrefix(from, "/\\") {
		return "/"
	}
	return from
}
