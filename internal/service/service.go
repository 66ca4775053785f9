package service

import (
	"context"
	"fmt"

	"github.com/DanRulev/quizroom/internal/config"
	"github.com/DanRulev/quizroom/internal/models"
	"github.com/DanRulev/quizroom/internal/session"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/mock.go

type UserStoreI interface {
	CurrentUser(ctx context.Context) (models.User, bool, error)
	SaveCurrentUser(ctx context.Context, user models.User) error
	ClearCurrentUser(ctx context.Context) error
}

type QuizStoreI interface {
	Quizzes(ctx context.Context) ([]models.Quiz, bool, error)
	SaveQuizzes(ctx context.Context, quizzes []models.Quiz) error
	Attempts(ctx context.Context) ([]models.QuizAttempt, error)
	SaveAttempts(ctx context.Context, attempts []models.QuizAttempt) error
}

type StoreI interface {
	UserStoreI
	QuizStoreI
}

// SessionCacheI holds the single active play session of the process.
type SessionCacheI interface {
	Session() (*session.Session, context.CancelFunc, bool)
	SetSession(s *session.Session, cancel context.CancelFunc)
	SetCancel(s *session.Session, cancel context.CancelFunc) bool
	DeleteSession()
}

type Service struct {
	*AuthS
	*QuizS
	*AuthorS
	*PlayS
}

func InitServices(cfg config.AppConfig, store StoreI, cache SessionCacheI, log *zap.Logger) *Service {
	quizzes := NewQuizService(store, log)

	return &Service{
		AuthS:   NewAuthService(store, cfg, log),
		QuizS:   quizzes,
		AuthorS: NewAuthorService(quizzes, log),
		PlayS:   NewPlayService(quizzes, cache, cfg.SecondsPerQuestion, log),
	}
}

// Init loads the current user and the collections from the store.
func (s *Service) Init(ctx context.Context) error {
	if err := s.AuthS.Init(ctx); err != nil {
		return fmt.Errorf("init auth: %w", err)
	}
	if err := s.QuizS.Init(ctx); err != nil {
		return fmt.Errorf("init quizzes: %w", err)
	}
	return nil
}
