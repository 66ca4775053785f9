package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonQuizzes = "🧠 Quizzes"
	ButtonHistory = "📊 History"
	ButtonHelp    = "ℹ️ Help"
)

const helpText = `📚 Commands:
/start: show the menu
/help: this message
/login <email> <password>: sign in
/register <username> <email> <password>: create an account
/logout: sign out
/quizzes [search]: published quizzes
/play <quiz id>: take a quiz
/history: your completed quizzes`

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	args := strings.Fields(message.CommandArguments())

	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "login":
		t.auth.login(message, args)
	case "register":
		t.auth.register(message, args)
	case "logout":
		t.auth.logout(message)
	case "quizzes":
		t.play.listQuizzes(message, strings.Join(args, " "))
	case "play":
		t.play.openQuiz(message, args)
	case "history":
		t.play.sendHistory(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Try /help")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Hi! I run quizzes.\n\n" +
		"✨ What I can do:\n" +
		"• 🧠 List published quizzes\n" +
		"• ⏱ Run a timed quiz with buttons\n" +
		"• 📊 Show your scores\n\n" +
		"Sign in with /login to begin."

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonQuizzes),
			tgbotapi.NewKeyboardButton(ButtonHistory),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	switch message.Text {
	case ButtonQuizzes:
		t.play.listQuizzes(message, "")
	case ButtonHistory:
		t.play.sendHistory(message)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "I did not get that. Use the buttons below or /help.")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.Message == nil {
		t.log.Warn("callback without message", zap.String("callback_id", query.ID))
		return
	}

	if strings.HasPrefix(query.Data, playPrefix) {
		t.play.handlePlayCallbackQuery(query)
		return
	}

	t.log.Warn("unknown callback data", zap.String("data", query.Data))
}
