package service

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/DanRulev/quizroom/internal/models"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

const unknownQuizTitle = "Unknown Quiz"

// QuizS owns the quiz and attempt collections. Reads are served from memory;
// every mutation writes the whole affected collection back to the store.
type QuizS struct {
	notifier

	store QuizStoreI
	log   *zap.Logger
	now   func() time.Time

	mu       sync.RWMutex
	quizzes  []models.Quiz
	attempts []models.QuizAttempt
}

func NewQuizService(store QuizStoreI, log *zap.Logger) *QuizS {
	return &QuizS{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// Init loads both collections. A store that has never held quizzes is seeded
// with the demo quiz.
func (q *QuizS) Init(ctx context.Context) error {
	quizzes, ok, err := q.store.Quizzes(ctx)
	if err != nil {
		return err
	}
	if !ok {
		quizzes = []models.Quiz{demoQuiz(q.now())}
		if err := q.store.SaveQuizzes(ctx, quizzes); err != nil {
			return fmt.Errorf("seed quizzes: %w", err)
		}
		q.log.Info("seeded demo quiz", zap.String("quiz_id", quizzes[0].ID))
	}

	attempts, err := q.store.Attempts(ctx)
	if err != nil {
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.quizzes = quizzes
	q.attempts = attempts
	return nil
}

func (q *QuizS) GetQuiz(id string) (models.Quiz, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	i := q.indexOf(id)
	if i < 0 {
		return models.Quiz{}, false
	}
	return q.clone(q.quizzes[i]), true
}

// CreateQuiz stores quiz under a fresh id and creation time.
func (q *QuizS) CreateQuiz(ctx context.Context, quiz models.Quiz) (models.Quiz, error) {
	quiz = q.clone(quiz)
	quiz.ID = "quiz-" + uuid.NewString()
	quiz.CreatedAt = q.now()

	q.mu.Lock()
	next := append(slices.Clip(q.quizzes), quiz)
	if err := q.store.SaveQuizzes(ctx, next); err != nil {
		q.mu.Unlock()
		q.log.Warn("failed to save quizzes", zap.String("quiz_id", quiz.ID), zap.Error(err))
		return models.Quiz{}, fmt.Errorf("create quiz: %w", err)
	}
	q.quizzes = next
	q.mu.Unlock()

	q.publish(Event{Kind: EventQuizCreated, QuizID: quiz.ID, UserID: quiz.CreatedBy})
	return q.clone(quiz), nil
}

// UpdateQuiz merges patch into the quiz with the given id. The patch is
// validated first; an unknown id is a no-op.
func (q *QuizS) UpdateQuiz(ctx context.Context, id string, patch models.QuizPatch) error {
	if errs := validatePatch(patch); len(errs) > 0 {
		return errs
	}

	q.mu.Lock()
	i := q.indexOf(id)
	if i < 0 {
		q.mu.Unlock()
		return nil
	}

	quiz := q.clone(q.quizzes[i])
	if patch.Title != nil {
		quiz.Title = *patch.Title
	}
	if patch.Description != nil {
		quiz.Description = *patch.Description
	}
	if patch.Questions != nil {
		quiz.Questions = q.cloneQuestions(patch.Questions)
	}
	if patch.Published != nil {
		quiz.Published = *patch.Published
	}

	next := slices.Clone(q.quizzes)
	next[i] = quiz
	if err := q.store.SaveQuizzes(ctx, next); err != nil {
		q.mu.Unlock()
		q.log.Warn("failed to save quizzes", zap.String("quiz_id", id), zap.Error(err))
		return fmt.Errorf("update quiz: %w", err)
	}
	q.quizzes = next
	q.mu.Unlock()

	q.publish(Event{Kind: EventQuizUpdated, QuizID: id})
	return nil
}

// TogglePublished flips the published flag and reports the new value.
func (q *QuizS) TogglePublished(ctx context.Context, id string) (bool, error) {
	quiz, ok := q.GetQuiz(id)
	if !ok {
		return false, models.ErrQuizNotFound
	}

	published := !quiz.Published
	if err := q.UpdateQuiz(ctx, id, models.QuizPatch{Published: &published}); err != nil {
		return false, err
	}
	return published, nil
}

// DeleteQuiz removes the quiz if present. Attempts that reference it are kept.
func (q *QuizS) DeleteQuiz(ctx context.Context, id string) error {
	q.mu.Lock()
	i := q.indexOf(id)
	if i < 0 {
		q.mu.Unlock()
		return nil
	}

	next := slices.Delete(slices.Clone(q.quizzes), i, i+1)
	if err := q.store.SaveQuizzes(ctx, next); err != nil {
		q.mu.Unlock()
		q.log.Warn("failed to save quizzes", zap.String("quiz_id", id), zap.Error(err))
		return fmt.Errorf("delete quiz: %w", err)
	}
	q.quizzes = next
	q.mu.Unlock()

	q.publish(Event{Kind: EventQuizDeleted, QuizID: id})
	return nil
}

// SaveQuizAttempt stores attempt under a fresh id and completion time.
func (q *QuizS) SaveQuizAttempt(ctx context.Context, attempt models.QuizAttempt) (models.QuizAttempt, error) {
	attempt.ID = "attempt-" + uuid.NewString()
	attempt.CompletedAt = q.now()
	attempt.Answers = slices.Clone(attempt.Answers)

	q.mu.Lock()
	next := append(slices.Clip(q.attempts), attempt)
	if err := q.store.SaveAttempts(ctx, next); err != nil {
		q.mu.Unlock()
		q.log.Warn("failed to save attempts", zap.String("quiz_id", attempt.QuizID), zap.Error(err))
		return models.QuizAttempt{}, fmt.Errorf("save attempt: %w", err)
	}
	q.attempts = next
	q.mu.Unlock()

	q.publish(Event{Kind: EventAttemptSaved, QuizID: attempt.QuizID, UserID: attempt.UserID})
	return attempt, nil
}

func (q *QuizS) Quizzes() []models.Quiz {
	return q.filterQuizzes(func(models.Quiz) bool { return true })
}

func (q *QuizS) Attempts() []models.QuizAttempt {
	return q.filterAttempts(func(models.QuizAttempt) bool { return true })
}

// GetUserQuizzes returns the quizzes created by userID in insertion order.
func (q *QuizS) GetUserQuizzes(userID string) []models.Quiz {
	return q.filterQuizzes(func(quiz models.Quiz) bool { return quiz.CreatedBy == userID })
}

// GetCompletedQuizzes returns the attempts of userID in insertion order.
func (q *QuizS) GetCompletedQuizzes(userID string) []models.QuizAttempt {
	return q.filterAttempts(func(a models.QuizAttempt) bool { return a.UserID == userID })
}

// PublishedQuizzes returns published quizzes whose title or description
// contains search, ignoring case.
func (q *QuizS) PublishedQuizzes(search string) []models.Quiz {
	return q.filterQuizzes(func(quiz models.Quiz) bool {
		return quiz.Published && matches(quiz, search)
	})
}

func (q *QuizS) AttemptCount(quizID string) int {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return q.attemptCountLocked(quizID)
}

func (q *QuizS) AdminQuizzes(filter models.AdminFilter) models.AdminOverview {
	q.mu.RLock()
	defer q.mu.RUnlock()

	out := models.AdminOverview{
		Quizzes:       []models.AdminQuiz{},
		TotalQuizzes:  len(q.quizzes),
		TotalAttempts: len(q.attempts),
	}

	for _, quiz := range q.quizzes {
		if quiz.Published {
			out.TotalPublished++
		} else {
			out.TotalDrafts++
		}

		visible := (filter.ShowDrafts && !quiz.Published) || (filter.ShowPublished && quiz.Published)
		if !visible || !matches(quiz, filter.Search) {
			continue
		}

		out.Quizzes = append(out.Quizzes, models.AdminQuiz{
			Quiz:         q.clone(quiz),
			AttemptCount: q.attemptCountLocked(quiz.ID),
		})
	}

	return out
}

// History lists the attempts of userID, most recent first. Attempts of
// deleted quizzes are kept under a placeholder title.
func (q *QuizS) History(userID string) []models.HistoryEntry {
	q.mu.RLock()
	defer q.mu.RUnlock()

	out := make([]models.HistoryEntry, 0)
	for _, a := range q.attempts {
		if a.UserID != userID {
			continue
		}

		title := unknownQuizTitle
		if i := q.indexOf(a.QuizID); i >= 0 {
			title = q.quizzes[i].Title
		}

		a.Answers = slices.Clone(a.Answers)
		out = append(out, models.HistoryEntry{
			QuizAttempt: a,
			QuizTitle:   title,
			Percentage:  a.Percentage(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompletedAt.After(out[j].CompletedAt)
	})

	return out
}

func (q *QuizS) Stats(userID string) models.QuizStats {
	q.mu.RLock()
	defer q.mu.RUnlock()

	var (
		stats models.QuizStats
		sum   float64
	)

	for _, a := range q.attempts {
		if a.UserID != userID {
			continue
		}
		stats.CompletedCount++
		if a.TotalQuestions > 0 {
			sum += float64(a.Score) / float64(a.TotalQuestions) * 100
		}
	}
	if stats.CompletedCount > 0 {
		stats.AverageScore = int(math.Round(sum / float64(stats.CompletedCount)))
	}

	for _, quiz := range q.quizzes {
		if quiz.CreatedBy == userID {
			stats.CreatedCount++
		}
	}

	return stats
}

func (q *QuizS) filterQuizzes(keep func(models.Quiz) bool) []models.Quiz {
	q.mu.RLock()
	defer q.mu.RUnlock()

	out := make([]models.Quiz, 0)
	for _, quiz := range q.quizzes {
		if keep(quiz) {
			out = append(out, q.clone(quiz))
		}
	}
	return out
}

func (q *QuizS) filterAttempts(keep func(models.QuizAttempt) bool) []models.QuizAttempt {
	q.mu.RLock()
	defer q.mu.RUnlock()

	out := make([]models.QuizAttempt, 0)
	for _, a := range q.attempts {
		if keep(a) {
			a.Answers = slices.Clone(a.Answers)
			out = append(out, a)
		}
	}
	return out
}

func (q *QuizS) attemptCountLocked(quizID string) int {
	n := 0
	for _, a := range q.attempts {
		if a.QuizID == quizID {
			n++
		}
	}
	return n
}

func (q *QuizS) indexOf(id string) int {
	return slices.IndexFunc(q.quizzes, func(quiz models.Quiz) bool { return quiz.ID == id })
}

// clone returns a copy of quiz that shares no slices with it.
func (q *QuizS) clone(quiz models.Quiz) models.Quiz {
	out := quiz
	out.Questions = q.cloneQuestions(quiz.Questions)
	return out
}

func (q *QuizS) cloneQuestions(questions []models.Question) []models.Question {
	if questions == nil {
		return nil
	}

	out := make([]models.Question, 0, len(questions))
	if err := copier.CopyWithOption(&out, &questions, copier.Option{DeepCopy: true}); err != nil {
		q.log.Warn("deep copy failed, copying questions by hand", zap.Error(err))
		out = out[:0]
		for _, question := range questions {
			question.Options = slices.Clone(question.Options)
			out = append(out, question)
		}
	}
	return out
}

func matches(quiz models.Quiz, search string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(quiz.Title), search) ||
		strings.Contains(strings.ToLower(quiz.Description), search)
}

func demoQuiz(now time.Time) models.Quiz {
	return models.Quiz{
		ID:          "quiz-1",
		Title:       "General Knowledge Quiz",
		Description: "Test your general knowledge with these questions!",
		CreatedBy:   adminUserID,
		CreatedAt:   now,
		Published:   true,
		Questions: []models.Question{
			{
				ID:            "q1",
				Text:          "What is the capital of France?",
				Options:       []string{"London", "Berlin", "Paris", "Madrid"},
				CorrectAnswer: 2,
			},
			{
				ID:            "q2",
				Text:          "Who painted the Mona Lisa?",
				Options:       []string{"Van Gogh", "Da Vinci", "Picasso", "Michelangelo"},
				CorrectAnswer: 1,
			},
		},
	}
}
