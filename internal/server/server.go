package server

import (
	"context"
	"net/http"

	"github.com/DanRulev/quizroom/internal/config"
	"github.com/DanRulev/quizroom/internal/models"
	"github.com/DanRulev/quizroom/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type AuthSI interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	Register(ctx context.Context, username, email, password string) (models.User, error)
	Logout(ctx context.Context)
	CurrentUser() (models.User, bool)
}

type QuizSI interface {
	PublishedQuizzes(search string) []models.Quiz
	Stats(userID string) models.QuizStats
	History(userID string) []models.HistoryEntry
	AdminQuizzes(filter models.AdminFilter) models.AdminOverview
	TogglePublished(ctx context.Context, id string) (bool, error)
	DeleteQuiz(ctx context.Context, id string) error
	SubmitDraft(ctx context.Context, author models.User, draft models.QuizDraft, publish bool) (models.Quiz, error)
}

type PlaySI interface {
	Open(quizID string, user models.User) (session.Snapshot, error)
	Start(quizID string) (session.Snapshot, error)
	Answer(quizID string, option int) (session.Snapshot, error)
	Next(quizID string) (session.Snapshot, error)
	Previous(quizID string) (session.Snapshot, error)
	Finish(quizID string) (session.Snapshot, error)
	Discard()
}

type ServiceI interface {
	AuthSI
	QuizSI
	PlaySI
}

type handler struct {
	svc ServiceI
	log *zap.Logger
}

// NewRouter mounts every page of the application with its guard.
func NewRouter(svc ServiceI, cfg config.HTTPConfig, log *zap.Logger) http.Handler {
	h := &handler{svc: svc, log: log}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(h.publicOnly)

		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/register", h.registerPage)
		r.Post("/register", h.register)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.requireUser)

		r.Post("/logout", h.logout)

		r.Route("/play-quiz/{id}", func(r chi.Router) {
			r.Get("/", h.openPlay)
			r.Delete("/", h.abandonPlay)
			r.Post("/start", h.startPlay)
			r.Post("/answer", h.answer)
			r.Post("/next", h.next)
			r.Post("/previous", h.previous)
			r.Post("/finish", h.finish)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.leavePlay)

			r.Get("/", h.home)
			r.Get("/create-quiz", h.createQuizPage)
			r.Post("/create-quiz", h.createQuiz)
			r.Get("/completed-quizzes", h.completed)

			r.Route("/admin", func(r chi.Router) {
				r.Use(h.requireAdmin)

				r.Get("/", h.adminDashboard)
				r.Post("/quizzes/{id}/publish", h.togglePublished)
				r.Delete("/quizzes/{id}", h.deleteQuiz)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"page": "not-found"})
	})

	return r
}

func New(cfg config.HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}
