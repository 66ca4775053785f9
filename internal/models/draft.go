package models

import (
	"sort"
	"strings"
)

// QuestionDraft is a question as typed into the authoring form.
type QuestionDraft struct {
	Text          string   `json:"text" validate:"notblank"`
	Options       []string `json:"options" validate:"len=4,dive,notblank"`
	CorrectAnswer int      `json:"correctAnswer" validate:"min=0,max=3"`
}

// QuizDraft is the authoring form. Publishing and saving a draft share it.
type QuizDraft struct {
	Title       string          `json:"title" validate:"notblank"`
	Description string          `json:"description" validate:"notblank"`
	Questions   []QuestionDraft `json:"questions" validate:"min=1,dive"`
}

// NewQuizDraft returns the initial form: one question with blank options.
func NewQuizDraft() QuizDraft {
	return QuizDraft{
		Questions: []QuestionDraft{NewQuestionDraft()},
	}
}

func NewQuestionDraft() QuestionDraft {
	return QuestionDraft{
		Options: make([]string, OptionsPerQuestion),
	}
}

// FieldErrors maps form field keys (title, question_0_option_2, ...) to messages.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return "invalid quiz: " + strings.Join(parts, "; ")
}
