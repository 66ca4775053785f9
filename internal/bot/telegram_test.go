package bot

import (
	"strings"
	"testing"

	mock_bot "github.com/DanRulev/quizroom/internal/bot/mock"
	"github.com/DanRulev/quizroom/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const ownerChat int64 = 100

func newTelegramMock(t *testing.T, ctrl *gomock.Controller, owner int64, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) (*TelegramAPI, *mock_bot.MockBot) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return newTelegram(mockBot, owner, mockService, zap.NewNop()), mockBot
}

func commandUpdate(chatID int64, text string) tgbotapi.Update {
	cmd, _, _ := strings.Cut(text, " ")
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 1,
			Chat:      &tgbotapi.Chat{ID: chatID},
			From:      &tgbotapi.User{ID: chatID},
			Text:      text,
			Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(cmd)}},
		},
	}
}

func textUpdate(chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 1,
			Chat:      &tgbotapi.Chat{ID: chatID},
			From:      &tgbotapi.User{ID: chatID},
			Text:      text,
		},
	}
}

func lastText(t *testing.T, mb *mock_bot.MockBot) string {
	t.Helper()

	require.NotEmpty(t, mb.SentMessages)
	switch msg := mb.SentMessages[len(mb.SentMessages)-1].(type) {
	case tgbotapi.MessageConfig:
		return msg.Text
	case tgbotapi.EditMessageTextConfig:
		return msg.Text
	}
	t.Fatalf("unexpected message type %T", mb.SentMessages[len(mb.SentMessages)-1])
	return ""
}

func TestTelegramAPI_handleUpdate_Owner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		owner    int64
		chats    []int64
		wantText []string
	}{
		{
			name:     "foreign chat is refused",
			owner:    ownerChat,
			chats:    []int64{200},
			wantText: []string{"🔒 This bot is bound to another chat."},
		},
		{
			name:     "first chat binds an unowned bot",
			owner:    0,
			chats:    []int64{300, 400},
			wantText: []string{helpText, "🔒 This bot is bound to another chat."},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tg, mb := newTelegramMock(t, ctrl, tt.owner, nil)

			for _, chat := range tt.chats {
				tg.handleUpdate(commandUpdate(chat, "/help"))
			}

			require.Len(t, mb.SentMessages, len(tt.wantText))
			for i, want := range tt.wantText {
				msg, ok := mb.SentMessages[i].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Equal(t, want, msg.Text)
			}
		})
	}
}

func TestTelegramAPI_handleCommand(t *testing.T) {
	t.Parallel()

	bob := models.User{ID: "user-1", Username: "bob", Email: "bob@mail.io"}

	tests := []struct {
		name     string
		update   tgbotapi.Update
		f        func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		wantText string
	}{
		{
			name:   "login",
			update: commandUpdate(ownerChat, "/login bob@mail.io pw"),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Login(gomock.Any(), "bob@mail.io", "pw").Return(bob, nil)
			},
			wantText: "✅ Signed in as bob",
		},
		{
			name:   "login as admin",
			update: commandUpdate(ownerChat, "/login admin@example.com admin123"),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Login(gomock.Any(), "admin@example.com", "admin123").
					Return(models.User{ID: "admin-user-1", Username: "Admin User", IsAdmin: true}, nil)
			},
			wantText: "✅ Signed in as Admin User (admin)",
		},
		{
			name:     "login usage",
			update:   commandUpdate(ownerChat, "/login bob@mail.io"),
			wantText: "Usage: /login <email> <password>",
		},
		{
			name:   "register missing fields",
			update: commandUpdate(ownerChat, "/register bob bob@mail.io pw"),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Register(gomock.Any(), "bob", "bob@mail.io", "pw").Return(models.User{}, models.ErrMissingFields)
			},
			wantText: "❌ All fields are required.",
		},
		{
			name:   "logout",
			update: commandUpdate(ownerChat, "/logout"),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Discard()
				ms.EXPECT().Logout(gomock.Any())
			},
			wantText: "👋 Signed out.",
		},
		{
			name:   "quizzes requires login",
			update: commandUpdate(ownerChat, "/quizzes"),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().CurrentUser().Return(models.User{}, false)
			},
			wantText: "🔑 Sign in first with /login",
		},
		{
			name:   "history is empty",
			update: textUpdate(ownerChat, ButtonHistory),
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().CurrentUser().Return(bob, true)
				ms.EXPECT().Discard()
				ms.EXPECT().History("user-1").Return(nil)
			},
			wantText: "You have not completed any quizzes yet.",
		},
		{
			name:     "unknown command",
			update:   commandUpdate(ownerChat, "/dance"),
			wantText: "Unknown command. Try /help",
		},
		{
			name:     "free text",
			update:   textUpdate(ownerChat, "hello"),
			wantText: "I did not get that. Use the buttons below or /help.",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tg, mb := newTelegramMock(t, ctrl, ownerChat, tt.f)

			tg.handleUpdate(tt.update)

			assert.Equal(t, tt.wantText, lastText(t, mb))
		})
	}
}

func TestTelegramAPI_handleStartCommand(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tg, mb := newTelegramMock(t, ctrl, ownerChat, nil)

	tg.handleUpdate(commandUpdate(ownerChat, "/start"))

	require.Len(t, mb.SentMessages, 1)
	msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Contains(t, msg.Text, "/login")
	keyboard, ok := msg.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
	require.True(t, ok)
	assert.Equal(t, ButtonQuizzes, keyboard.Keyboard[0][0].Text)
}
