package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/DanRulev/quizroom/internal/models"
	"github.com/DanRulev/quizroom/pkg/validator"
	"go.uber.org/zap"
)

const (
	msgTitleRequired       = "Title is required"
	msgDescriptionRequired = "Description is required"
	msgQuestionsRequired   = "At least one question is required"
	msgQuestionRequired    = "Question text is required"
	msgOptionRequired      = "Option cannot be empty"
	msgOptionsCount        = "Exactly 4 options are required"
	msgCorrectAnswer       = "Correct answer must be one of the options"
)

var (
	questionTextPath   = regexp.MustCompile(`^questions\[(\d+)\]\.text$`)
	questionOptionPath = regexp.MustCompile(`^questions\[(\d+)\]\.options\[(\d+)\]$`)
	questionOptsPath   = regexp.MustCompile(`^questions\[(\d+)\]\.options$`)
	questionAnswerPath = regexp.MustCompile(`^questions\[(\d+)\]\.correctAnswer$`)
)

type QuizCreatorI interface {
	CreateQuiz(ctx context.Context, quiz models.Quiz) (models.Quiz, error)
}

// AuthorS turns authoring drafts into stored quizzes.
type AuthorS struct {
	quizzes QuizCreatorI
	log     *zap.Logger
	now     func() time.Time
}

func NewAuthorService(quizzes QuizCreatorI, log *zap.Logger) *AuthorS {
	return &AuthorS{
		quizzes: quizzes,
		log:     log,
		now:     time.Now,
	}
}

// SubmitDraft validates draft and stores it as a quiz owned by author.
// Publishing and saving as a draft differ only in the published flag.
func (a *AuthorS) SubmitDraft(ctx context.Context, author models.User, draft models.QuizDraft, publish bool) (models.Quiz, error) {
	if errs := ValidateDraft(draft); len(errs) > 0 {
		return models.Quiz{}, errs
	}

	stamp := a.now().UnixMilli()
	quiz := models.Quiz{
		Title:       draft.Title,
		Description: draft.Description,
		CreatedBy:   author.ID,
		Published:   publish,
		Questions:   make([]models.Question, 0, len(draft.Questions)),
	}
	for i, d := range draft.Questions {
		quiz.Questions = append(quiz.Questions, models.Question{
			ID:            fmt.Sprintf("q-%d-%d", i, stamp),
			Text:          d.Text,
			Options:       append([]string(nil), d.Options...),
			CorrectAnswer: d.CorrectAnswer,
		})
	}

	created, err := a.quizzes.CreateQuiz(ctx, quiz)
	if err != nil {
		return models.Quiz{}, err
	}

	a.log.Info("quiz created",
		zap.String("quiz_id", created.ID),
		zap.String("user_id", author.ID),
		zap.Bool("published", publish),
	)
	return created, nil
}

// ValidateDraft reports every blank field of draft and every question without
// exactly four options and a correct answer among them, keyed the way the
// authoring form names its inputs. It returns nil for a valid draft.
func ValidateDraft(draft models.QuizDraft) models.FieldErrors {
	fields, err := validator.Fields(draft)
	if err != nil {
		return models.FieldErrors{"form": err.Error()}
	}
	return formErrors(fields)
}

type questionSet struct {
	Questions []models.QuestionDraft `json:"questions" validate:"min=1,dive"`
}

func validatePatch(patch models.QuizPatch) models.FieldErrors {
	errs := models.FieldErrors{}

	if patch.Title != nil && isBlank(*patch.Title) {
		errs["title"] = msgTitleRequired
	}
	if patch.Description != nil && isBlank(*patch.Description) {
		errs["description"] = msgDescriptionRequired
	}

	if patch.Questions != nil {
		set := questionSet{Questions: make([]models.QuestionDraft, 0, len(patch.Questions))}
		for _, q := range patch.Questions {
			set.Questions = append(set.Questions, models.QuestionDraft{
				Text:          q.Text,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
			})
		}

		fields, err := validator.Fields(set)
		if err != nil {
			errs["questions"] = err.Error()
		}
		for k, v := range formErrors(fields) {
			errs[k] = v
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func formErrors(fields []validator.FieldError) models.FieldErrors {
	if len(fields) == 0 {
		return nil
	}

	errs := make(models.FieldErrors, len(fields))
	for _, f := range fields {
		switch {
		case f.Path == "title":
			errs["title"] = msgTitleRequired
		case f.Path == "description":
			errs["description"] = msgDescriptionRequired
		case f.Path == "questions":
			errs["questions"] = msgQuestionsRequired
		default:
			if m := questionTextPath.FindStringSubmatch(f.Path); m != nil {
				errs["question_"+m[1]] = msgQuestionRequired
			} else if m := questionOptionPath.FindStringSubmatch(f.Path); m != nil {
				errs["question_"+m[1]+"_option_"+m[2]] = msgOptionRequired
			} else if m := questionOptsPath.FindStringSubmatch(f.Path); m != nil {
				errs["question_"+m[1]+"_options"] = msgOptionsCount
			} else if m := questionAnswerPath.FindStringSubmatch(f.Path); m != nil {
				errs["question_"+m[1]+"_correct"] = msgCorrectAnswer
			} else {
				errs[f.Path] = f.Tag
			}
		}
	}
	return errs
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
