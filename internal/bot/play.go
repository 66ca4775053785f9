package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/DanRulev/quizroom/internal/models"
	"github.com/DanRulev/quizroom/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	playPrefix   = "play_"
	playStart    = "play_start"
	playOption   = "play_opt_"
	playPrevious = "play_prev"
	playNext     = "play_next"
	playFinish   = "play_finish"
	playQuit     = "play_quit"
)

type PlaySI interface {
	PublishedQuizzes(search string) []models.Quiz
	History(userID string) []models.HistoryEntry
	Open(quizID string, user models.User) (session.Snapshot, error)
	Start(quizID string) (session.Snapshot, error)
	Answer(quizID string, option int) (session.Snapshot, error)
	Next(quizID string) (session.Snapshot, error)
	Previous(quizID string) (session.Snapshot, error)
	Finish(quizID string) (session.Snapshot, error)
	Active() (session.Snapshot, bool)
	Discard()
}

type PlayT struct {
	bot     BotSender
	service ServiceI
	log     *zap.Logger
}

func NewPlayTAPI(bot BotSender, service ServiceI, log *zap.Logger) *PlayT {
	return &PlayT{
		bot:     bot,
		service: service,
		log:     log,
	}
}

func (t *PlayT) currentUser(chatID int64) (models.User, bool) {
	user, ok := t.service.CurrentUser()
	if !ok {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(chatID, "🔑 Sign in first with /login"))
	}
	return user, ok
}

func (t *PlayT) listQuizzes(message *tgbotapi.Message, search string) {
	if _, ok := t.currentUser(message.Chat.ID); !ok {
		return
	}
	t.service.Discard()

	quizzes := t.service.PublishedQuizzes(search)
	if len(quizzes) == 0 {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "No quizzes found."))
		return
	}

	var sb strings.Builder
	sb.WriteString("🧠 Published quizzes:\n")
	for _, q := range quizzes {
		fmt.Fprintf(&sb, "\n• %s (%d questions)\n  %s\n  /play %s\n", q.Title, len(q.Questions), q.Description, q.ID)
	}

	sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, sb.String()))
}

func (t *PlayT) sendHistory(message *tgbotapi.Message) {
	user, ok := t.currentUser(message.Chat.ID)
	if !ok {
		return
	}
	t.service.Discard()

	history := t.service.History(user.ID)
	if len(history) == 0 {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "You have not completed any quizzes yet."))
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 Completed quizzes:\n")
	for _, h := range history {
		fmt.Fprintf(&sb, "\n• %s: %d/%d (%d%%), %s", h.QuizTitle, h.Score, h.TotalQuestions, h.Percentage,
			h.CompletedAt.Format("2006-01-02 15:04"))
	}

	sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, sb.String()))
}

func (t *PlayT) openQuiz(message *tgbotapi.Message, args []string) {
	if len(args) != 1 {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "Usage: /play <quiz id>"))
		return
	}
	user, ok := t.currentUser(message.Chat.ID)
	if !ok {
		return
	}

	snap, err := t.service.Open(args[0], user)
	if err != nil {
		if errors.Is(err, models.ErrQuizNotFound) {
			sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "❌ Quiz not found. See /quizzes"))
			return
		}
		t.log.Warn("failed to open quiz", zap.String("quiz_id", args[0]), zap.Error(err))
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "❌ Could not open the quiz."))
		return
	}

	text := fmt.Sprintf("🧠 %s\n\n%d questions, %s to answer them all.", snap.QuizTitle, snap.Total, snap.Clock)
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Start", playStart),
			tgbotapi.NewInlineKeyboardButtonData("✖️ Quit", playQuit),
		),
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyMarkup = keyboard
	sendMessage(t.bot, t.log, msg)
}

func (t *PlayT) handlePlayCallbackQuery(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	active, ok := t.service.Active()
	if !ok {
		t.edit(chatID, messageID, "⌛ This quiz is no longer active. See /quizzes", nil)
		return
	}
	quizID := active.QuizID

	var (
		snap session.Snapshot
		err  error
	)

	switch data := query.Data; {
	case data == playStart:
		snap, err = t.service.Start(quizID)
	case strings.HasPrefix(data, playOption):
		option, convErr := strconv.Atoi(strings.TrimPrefix(data, playOption))
		if convErr != nil {
			t.log.Warn("bad option callback", zap.String("data", data))
			return
		}
		snap, err = t.service.Answer(quizID, option)
	case data == playPrevious:
		snap, err = t.service.Previous(quizID)
	case data == playNext:
		snap, err = t.service.Next(quizID)
	case data == playFinish:
		snap, err = t.service.Finish(quizID)
	case data == playQuit:
		t.service.Discard()
		t.edit(chatID, messageID, "✖️ Quiz abandoned. Nothing was recorded.", nil)
		return
	default:
		t.log.Warn("unknown play callback", zap.String("data", data))
		return
	}

	if err != nil {
		if errors.Is(err, session.ErrNotInProgress) || errors.Is(err, session.ErrAlreadyStarted) {
			snap, _ = t.service.Active()
		} else {
			t.log.Warn("play callback failed", zap.String("quiz_id", quizID), zap.Error(err))
			t.edit(chatID, messageID, "❌ Could not save your attempt.", nil)
			return
		}
	}

	t.render(chatID, messageID, snap)
}

func (t *PlayT) render(chatID int64, messageID int, snap session.Snapshot) {
	if snap.Result != nil {
		t.edit(chatID, messageID, resultText(snap), nil)
		return
	}
	if snap.Current == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🧠 %s\nQuestion %d/%d · ⏱ %s left\n\n%s", snap.QuizTitle, snap.Cursor+1, snap.Total, snap.Clock, snap.Current.Text)

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(snap.Current.Options)+2)
	for i, opt := range snap.Current.Options {
		label := opt
		if snap.Answers[snap.Cursor] == i {
			label = "✅ " + opt
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, playOption+strconv.Itoa(i)),
		))
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏪ Previous", playPrevious),
			tgbotapi.NewInlineKeyboardButtonData("Next ⏩", playNext),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏁 Finish", playFinish),
			tgbotapi.NewInlineKeyboardButtonData("✖️ Quit", playQuit),
		),
	)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	t.edit(chatID, messageID, sb.String(), &keyboard)
}

func (t *PlayT) edit(chatID int64, messageID int, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	editMsg := tgbotapi.NewEditMessageText(chatID, messageID, text)
	editMsg.ReplyMarkup = keyboard
	sendMessage(t.bot, t.log, editMsg)
}

func resultText(snap session.Snapshot) string {
	res := snap.Result

	var sb strings.Builder
	fmt.Fprintf(&sb, "🏁 %s\n\nScore: %d/%d (%d%%)\n", snap.QuizTitle, res.Score, res.Total, res.Percentage)
	for i, q := range res.Breakdown {
		mark := "❌"
		switch q.Outcome {
		case session.Correct:
			mark = "✅"
		case session.Unanswered:
			mark = "➖"
		}
		fmt.Fprintf(&sb, "\n%d. %s %s", i+1, mark, q.Text)
		if q.Outcome != session.Correct && q.Correct >= 0 && q.Correct < len(q.Options) {
			fmt.Fprintf(&sb, "\n   correct: %s", q.Options[q.Correct])
		}
	}
	return sb.String()
}
