package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanRulev/quizroom/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type AuthSI interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	Register(ctx context.Context, username, email, password string) (models.User, error)
	Logout(ctx context.Context)
	CurrentUser() (models.User, bool)
}

type AuthT struct {
	bot     BotSender
	service ServiceI
	log     *zap.Logger
}

func NewAuthTAPI(bot BotSender, service ServiceI, log *zap.Logger) *AuthT {
	return &AuthT{
		bot:     bot,
		service: service,
		log:     log,
	}
}

func (t *AuthT) login(message *tgbotapi.Message, args []string) {
	if len(args) != 2 {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "Usage: /login <email> <password>"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := t.service.Login(ctx, args[0], args[1])
	if err != nil {
		t.replyAuthError(message, err)
		return
	}

	text := fmt.Sprintf("✅ Signed in as %s", user.Username)
	if user.IsAdmin {
		text += " (admin)"
	}
	sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, text))
}

func (t *AuthT) register(message *tgbotapi.Message, args []string) {
	if len(args) != 3 {
		sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "Usage: /register <username> <email> <password>"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := t.service.Register(ctx, args[0], args[1], args[2])
	if err != nil {
		t.replyAuthError(message, err)
		return
	}

	sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, fmt.Sprintf("✅ Welcome, %s!", user.Username)))
}

func (t *AuthT) logout(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.service.Discard()
	t.service.Logout(ctx)

	sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, "👋 Signed out."))
}

func (t *AuthT) replyAuthError(message *tgbotapi.Message, err error) {
	text := "❌ Something went wrong. Try again later."
	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		text = "❌ Invalid credentials."
	case errors.Is(err, models.ErrMissingFields):
		text = "❌ All fields are required."
	default:
		t.log.Warn("bot authentication failed", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
	}
	sendMessage(t.bot, t.log, tgbotapi.NewMessage(message.Chat.ID, text))
}
