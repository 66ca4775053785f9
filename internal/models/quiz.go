package models

import (
	"math"
	"time"
)

// Unanswered marks a question without a selected option.
const Unanswered = -1

// OptionsPerQuestion is the fixed number of options of every question.
const OptionsPerQuestion = 4

type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	Questions   []Question `json:"questions"`
	Published   bool       `json:"published"`
}

// QuizPatch enumerates the mutable fields of a quiz. Nil fields are left untouched.
type QuizPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Questions   []Question `json:"questions,omitempty"`
	Published   *bool      `json:"published,omitempty"`
}

type AttemptAnswer struct {
	QuestionID     string `json:"questionId"`
	SelectedOption int    `json:"selectedOption"`
}

type QuizAttempt struct {
	ID             string          `json:"id"`
	QuizID         string          `json:"quizId"`
	UserID         string          `json:"userId"`
	Score          int             `json:"score"`
	TotalQuestions int             `json:"totalQuestions"`
	CompletedAt    time.Time       `json:"completedAt"`
	Answers        []AttemptAnswer `json:"answers"`
}

// Percentage is the rounded share of correct answers.
func (a QuizAttempt) Percentage() int {
	return Percentage(a.Score, a.TotalQuestions)
}

func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// HistoryEntry is an attempt as shown in the completed quizzes list.
type HistoryEntry struct {
	QuizAttempt
	QuizTitle  string `json:"quizTitle"`
	Percentage int    `json:"percentage"`
}

type QuizStats struct {
	CompletedCount int `json:"completedCount"`
	AverageScore   int `json:"averageScore"`
	CreatedCount   int `json:"createdCount"`
}

// AdminFilter selects quizzes on the admin dashboard.
type AdminFilter struct {
	Search        string
	ShowDrafts    bool
	ShowPublished bool
}

type AdminQuiz struct {
	Quiz
	AttemptCount int `json:"attemptCount"`
}

type AdminOverview struct {
	Quizzes        []AdminQuiz `json:"quizzes"`
	TotalQuizzes   int         `json:"totalQuizzes"`
	TotalDrafts    int         `json:"totalDrafts"`
	TotalPublished int         `json:"totalPublished"`
	TotalAttempts  int         `json:"totalAttempts"`
}
