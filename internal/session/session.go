// Package session holds the in-memory state of one quiz play-through:
// question navigation, the countdown and scoring.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/DanRulev/quizroom/internal/models"
)

var (
	// ErrNotInProgress is returned by transitions that need a running session.
	ErrNotInProgress = errors.New("quiz session is not in progress")
	// ErrAlreadyStarted is returned by Start on a session that left NotStarted.
	ErrAlreadyStarted = errors.New("quiz session already started")
)

// Phase is the lifecycle state of a session. Finished is terminal.
type Phase int

const (
	// NotStarted sessions show the intro; the countdown has not begun.
	NotStarted Phase = iota
	// InProgress sessions accept answers and navigation.
	InProgress
	// Finished sessions have been submitted, successfully or not.
	Finished
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for _, candidate := range []Phase{NotStarted, InProgress, Finished} {
		if candidate.String() == string(text) {
			*p = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}

type Outcome string

const (
	Correct    Outcome = "correct"
	Incorrect  Outcome = "incorrect"
	Unanswered Outcome = "unanswered"
)

type QuestionOutcome struct {
	QuestionID string   `json:"questionId"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Selected   int      `json:"selected"`
	Correct    int      `json:"correct"`
	Outcome    Outcome  `json:"outcome"`
}

type Result struct {
	Attempt    models.QuizAttempt `json:"attempt"`
	Score      int                `json:"score"`
	Total      int                `json:"total"`
	Percentage int                `json:"percentage"`
	Breakdown  []QuestionOutcome  `json:"breakdown"`
}

// SubmitFunc persists the attempt built on submission and returns the stored record.
type SubmitFunc func(models.QuizAttempt) (models.QuizAttempt, error)

type Session struct {
	mu sync.Mutex

	quiz      models.Quiz
	userID    string
	phase     Phase
	cursor    int
	answers   []int
	timeLeft  int
	submitted bool
	submitErr error
	result    Result
	submit    SubmitFunc
	done      chan struct{}
}

// New prepares a session over quiz. Every answer starts Unanswered and the
// countdown is seeded with secondsPerQuestion for every question.
func New(quiz models.Quiz, userID string, secondsPerQuestion int, submit SubmitFunc) *Session {
	answers := make([]int, len(quiz.Questions))
	for i := range answers {
		answers[i] = models.Unanswered
	}

	return &Session{
		quiz:     quiz,
		userID:   userID,
		answers:  answers,
		timeLeft: len(quiz.Questions) * secondsPerQuestion,
		submit:   submit,
		done:     make(chan struct{}),
	}
}

func (s *Session) QuizID() string {
	return s.quiz.ID
}

func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != NotStarted {
		return ErrAlreadyStarted
	}
	s.phase = InProgress
	return nil
}

// SelectAnswer records option for the current question, replacing any earlier choice.
func (s *Session) SelectAnswer(option int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != InProgress {
		return ErrNotInProgress
	}
	if len(s.answers) > 0 {
		s.answers[s.cursor] = option
	}
	return nil
}

// Next moves to the following question, or submits on the last one.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != InProgress {
		return ErrNotInProgress
	}
	if s.cursor < len(s.answers)-1 {
		s.cursor++
		return nil
	}
	return s.submitLocked()
}

func (s *Session) Previous() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != InProgress {
		return ErrNotInProgress
	}
	if s.cursor > 0 {
		s.cursor--
	}
	return nil
}

// Tick accounts for one elapsed second. Outside InProgress it does nothing.
func (s *Session) Tick() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != InProgress {
		return nil
	}
	if s.timeLeft > 0 {
		s.timeLeft--
	}
	if s.timeLeft == 0 {
		return s.submitLocked()
	}
	return nil
}

// Finish submits the session. A session that was already submitted returns
// the outcome of that submission again without persisting anything, so a
// failed save keeps failing.
func (s *Session) Finish() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitted {
		return s.result, s.submitErr
	}
	if s.phase != InProgress {
		return Result{}, ErrNotInProgress
	}
	if err := s.submitLocked(); err != nil {
		return Result{}, err
	}
	return s.result, nil
}

// Result reports the scored result once the attempt has been saved.
func (s *Session) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.result, s.submitted && s.submitErr == nil
}

// Done is closed once the session is submitted.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Run feeds Tick from ticks until the session is submitted or ctx is cancelled.
// Cancellation leaves the session unsubmitted.
func (s *Session) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		case <-ticks:
			if err := s.Tick(); err != nil {
				return err
			}
		}
	}
}

func (s *Session) submitLocked() error {
	if s.submitted {
		return nil
	}
	s.submitted = true
	s.phase = Finished
	defer close(s.done)

	result := Result{
		Total:     len(s.quiz.Questions),
		Breakdown: make([]QuestionOutcome, 0, len(s.quiz.Questions)),
	}
	attempt := models.QuizAttempt{
		QuizID:         s.quiz.ID,
		UserID:         s.userID,
		TotalQuestions: len(s.quiz.Questions),
		Answers:        make([]models.AttemptAnswer, 0, len(s.quiz.Questions)),
	}

	for i, q := range s.quiz.Questions {
		selected := s.answers[i]

		outcome := Incorrect
		switch {
		case selected == models.Unanswered:
			outcome = Unanswered
		case selected == q.CorrectAnswer:
			outcome = Correct
			result.Score++
		}

		result.Breakdown = append(result.Breakdown, QuestionOutcome{
			QuestionID: q.ID,
			Text:       q.Text,
			Options:    append([]string(nil), q.Options...),
			Selected:   selected,
			Correct:    q.CorrectAnswer,
			Outcome:    outcome,
		})
		attempt.Answers = append(attempt.Answers, models.AttemptAnswer{
			QuestionID:     q.ID,
			SelectedOption: selected,
		})
	}
	attempt.Score = result.Score
	result.Percentage = models.Percentage(result.Score, result.Total)
	result.Attempt = attempt

	if s.submit != nil {
		saved, err := s.submit(attempt)
		if err != nil {
			s.submitErr = fmt.Errorf("save attempt: %w", err)
			return s.submitErr
		}
		result.Attempt = saved
	}
	s.result = result

	return nil
}
