package service

import (
	"context"
	"errors"
	"time"

	"github.com/DanRulev/quizroom/internal/models"
	"github.com/DanRulev/quizroom/internal/session"
	"go.uber.org/zap"
)

type AttemptSaverI interface {
	GetQuiz(id string) (models.Quiz, bool)
	SaveQuizAttempt(ctx context.Context, attempt models.QuizAttempt) (models.QuizAttempt, error)
}

// PlayS drives the single active play session of the process.
type PlayS struct {
	quizzes  AttemptSaverI
	cache    SessionCacheI
	seconds  int
	interval time.Duration
	log      *zap.Logger
}

func NewPlayService(quizzes AttemptSaverI, cache SessionCacheI, secondsPerQuestion int, log *zap.Logger) *PlayS {
	return &PlayS{
		quizzes:  quizzes,
		cache:    cache,
		seconds:  secondsPerQuestion,
		interval: time.Second,
		log:      log,
	}
}

// Open returns the session for quizID, creating it when the active session
// belongs to another quiz or has already finished. The replaced session is
// discarded without an attempt.
func (p *PlayS) Open(quizID string, user models.User) (session.Snapshot, error) {
	quiz, ok := p.quizzes.GetQuiz(quizID)
	if !ok {
		return session.Snapshot{}, models.ErrQuizNotFound
	}

	if s, _, ok := p.cache.Session(); ok && s.QuizID() == quizID {
		if snap := s.Snapshot(); snap.Phase != session.Finished {
			return snap, nil
		}
	}
	p.Discard()

	s := session.New(quiz, user.ID, p.seconds, func(a models.QuizAttempt) (models.QuizAttempt, error) {
		return p.quizzes.SaveQuizAttempt(context.Background(), a)
	})
	p.cache.SetSession(s, nil)

	return s.Snapshot(), nil
}

// Start begins the session and its countdown.
func (p *PlayS) Start(quizID string) (session.Snapshot, error) {
	s, err := p.active(quizID)
	if err != nil {
		return session.Snapshot{}, err
	}
	if err := s.Start(); err != nil {
		return session.Snapshot{}, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	if !p.cache.SetCancel(s, cancel) {
		cancel()
		return session.Snapshot{}, models.ErrNoActiveSession
	}

	go p.countdown(ctx, s)

	return s.Snapshot(), nil
}

func (p *PlayS) Answer(quizID string, option int) (session.Snapshot, error) {
	return p.apply(quizID, func(s *session.Session) error { return s.SelectAnswer(option) })
}

func (p *PlayS) Next(quizID string) (session.Snapshot, error) {
	return p.apply(quizID, (*session.Session).Next)
}

func (p *PlayS) Previous(quizID string) (session.Snapshot, error) {
	return p.apply(quizID, (*session.Session).Previous)
}

func (p *PlayS) Finish(quizID string) (session.Snapshot, error) {
	return p.apply(quizID, func(s *session.Session) error {
		_, err := s.Finish()
		return err
	})
}

// Active reports the snapshot of the current session, if any.
func (p *PlayS) Active() (session.Snapshot, bool) {
	s, _, ok := p.cache.Session()
	if !ok {
		return session.Snapshot{}, false
	}
	return s.Snapshot(), true
}

// Discard drops the active session and stops its countdown. An unfinished
// session leaves no attempt behind.
func (p *PlayS) Discard() {
	s, cancel, ok := p.cache.Session()
	if !ok {
		return
	}
	if cancel != nil {
		cancel()
	}
	p.cache.DeleteSession()

	if _, done := s.Result(); !done {
		p.log.Debug("play session discarded", zap.String("quiz_id", s.QuizID()))
	}
}

func (p *PlayS) countdown(ctx context.Context, s *session.Session) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	err := s.Run(ctx, ticker.C)
	if err != nil && !errors.Is(err, context.Canceled) {
		p.log.Warn("countdown submission failed", zap.String("quiz_id", s.QuizID()), zap.Error(err))
	}
}

func (p *PlayS) apply(quizID string, op func(*session.Session) error) (session.Snapshot, error) {
	s, err := p.active(quizID)
	if err != nil {
		return session.Snapshot{}, err
	}
	if err := op(s); err != nil {
		p.log.Warn("play transition failed", zap.String("quiz_id", quizID), zap.Error(err))
		return s.Snapshot(), err
	}
	return s.Snapshot(), nil
}

func (p *PlayS) active(quizID string) (*session.Session, error) {
	s, _, ok := p.cache.Session()
	if !ok || s.QuizID() != quizID {
		return nil, models.ErrNoActiveSession
	}
	return s, nil
}
