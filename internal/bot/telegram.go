package bot

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=telegram.go -destination=mock/mock.go

type ServiceI interface {
	AuthSI
	PlaySI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramAPI struct {
	api  *tgbotapi.BotAPI
	bot  BotSender
	log  *zap.Logger
	auth *AuthT
	play *PlayT

	mu    sync.Mutex
	owner int64
}

func NewTelegramAPI(botToken, env string, ownerChatID int64, service ServiceI, log *zap.Logger) (*TelegramAPI, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	api.Debug = env == "development"

	t := newTelegram(api, ownerChatID, service, log)
	t.api = api
	return t, nil
}

func newTelegram(bot BotSender, ownerChatID int64, service ServiceI, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		bot:   bot,
		log:   log,
		owner: ownerChatID,
		auth:  NewAuthTAPI(bot, service, log),
		play:  NewPlayTAPI(bot, service, log),
	}
}

// Start polls for updates until ctx is cancelled.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	chat := update.FromChat()
	if chat == nil {
		return
	}
	if !t.allowed(chat.ID) {
		t.log.Warn("update from foreign chat refused", zap.Int64("chat_id", chat.ID))
		if update.Message != nil {
			sendMessage(t.bot, t.log, tgbotapi.NewMessage(chat.ID, "🔒 This bot is bound to another chat."))
		}
		return
	}

	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

// allowed binds the bot to the first chat that writes when no owner is configured.
func (t *TelegramAPI) allowed(chatID int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.owner == 0 {
		t.owner = chatID
		t.log.Info("bot bound to chat", zap.Int64("chat_id", chatID))
	}
	return t.owner == chatID
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}
