package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/DanRulev/quizroom/internal/config"
	"github.com/DanRulev/quizroom/internal/models"
	mock_service "github.com/DanRulev/quizroom/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testAppConfig() config.AppConfig {
	return config.AppConfig{
		SecondsPerQuestion: 60,
		DemoAdminEmail:     "admin@example.com",
		DemoAdminPassword:  "admin123",
	}
}

func newAuthServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockUserStoreI)) *AuthS {
	store := mock_service.NewMockUserStoreI(ctrl)
	if setupMock != nil {
		setupMock(store)
	}

	return NewAuthService(store, testAppConfig(), zap.NewNop())
}

func TestAuthS_Login(t *testing.T) {
	t.Parallel()

	type args struct {
		email    string
		password string
	}
	tests := []struct {
		name    string
		args    args
		f       func(*mock_service.MockUserStoreI)
		check   func(*testing.T, models.User)
		wantErr error
	}{
		{
			name: "demo admin",
			args: args{email: "admin@example.com", password: "admin123"},
			f: func(m *mock_service.MockUserStoreI) {
				m.EXPECT().SaveCurrentUser(gomock.Any(), models.User{
					ID:       "admin-user-1",
					Username: "Admin User",
					Email:    "admin@example.com",
					IsAdmin:  true,
				}).Return(nil)
			},
			check: func(t *testing.T, u models.User) {
				assert.Equal(t, "admin-user-1", u.ID)
				assert.True(t, u.IsAdmin)
			},
		},
		{
			name: "admin email with wrong password is a regular user",
			args: args{email: "admin@example.com", password: "nope"},
			f: func(m *mock_service.MockUserStoreI) {
				m.EXPECT().SaveCurrentUser(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, u models.User) {
				assert.False(t, u.IsAdmin)
				assert.Equal(t, "admin", u.Username)
			},
		},
		{
			name: "regular user",
			args: args{email: "jane.doe@mail.io", password: "secret"},
			f: func(m *mock_service.MockUserStoreI) {
				m.EXPECT().SaveCurrentUser(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, u models.User) {
				assert.True(t, strings.HasPrefix(u.ID, "user-"))
				assert.Equal(t, "jane.doe", u.Username)
				assert.Equal(t, "jane.doe@mail.io", u.Email)
				assert.False(t, u.IsAdmin)
			},
		},
		{
			name:    "empty email",
			args:    args{email: "", password: "secret"},
			wantErr: models.ErrInvalidCredentials,
		},
		{
			name:    "blank password",
			args:    args{email: "a@b.c", password: "  "},
			wantErr: models.ErrInvalidCredentials,
		},
		{
			name: "store unavailable",
			args: args{email: "a@b.c", password: "secret"},
			f: func(m *mock_service.MockUserStoreI) {
				m.EXPECT().SaveCurrentUser(gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("%w: write quizUser", models.ErrStorageUnavailable))
			},
			wantErr: models.ErrStorageUnavailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newAuthServiceMock(t, ctrl, tt.f)

			got, err := svc.Login(context.Background(), tt.args.email, tt.args.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				_, ok := svc.CurrentUser()
				assert.False(t, ok)
				return
			}

			require.NoError(t, err)
			tt.check(t, got)

			current, ok := svc.CurrentUser()
			require.True(t, ok)
			assert.Equal(t, got, current)
		})
	}
}

func TestAuthS_Register(t *testing.T) {
	t.Parallel()

	type args struct {
		username string
		email    string
		password string
	}
	tests := []struct {
		name    string
		args    args
		f       func(*mock_service.MockUserStoreI)
		wantErr error
	}{
		{
			name: "success",
			args: args{username: "bob", email: "bob@x.io", password: "pw"},
			f: func(m *mock_service.MockUserStoreI) {
				m.EXPECT().SaveCurrentUser(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "missing username",
			args:    args{email: "bob@x.io", password: "pw"},
			wantErr: models.ErrMissingFields,
		},
		{
			name:    "missing email",
			args:    args{username: "bob", password: "pw"},
			wantErr: models.ErrMissingFields,
		},
		{
			name:    "missing password",
			args:    args{username: "bob", email: "bob@x.io"},
			wantErr: models.ErrMissingFields,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newAuthServiceMock(t, ctrl, tt.f)

			got, err := svc.Register(context.Background(), tt.args.username, tt.args.email, tt.args.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.args.username, got.Username)
			assert.False(t, got.IsAdmin)
			assert.True(t, strings.HasPrefix(got.ID, "user-"))
		})
	}
}

func TestAuthS_Logout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		clearErr error
	}{
		{name: "success"},
		{name: "store error is swallowed", clearErr: errors.New("locked")},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newAuthServiceMock(t, ctrl, func(m *mock_service.MockUserStoreI) {
				m.EXPECT().SaveCurrentUser(gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().ClearCurrentUser(gomock.Any()).Return(tt.clearErr)
			})

			var events []Event
			unsubscribe := svc.Subscribe(func(e Event) { events = append(events, e) })
			defer unsubscribe()

			user, err := svc.Login(context.Background(), "a@b.c", "pw")
			require.NoError(t, err)

			svc.Logout(context.Background())

			_, ok := svc.CurrentUser()
			assert.False(t, ok)
			assert.Equal(t, []Event{
				{Kind: EventLogin, UserID: user.ID},
				{Kind: EventLogout, UserID: user.ID},
			}, events)
		})
	}
}

func TestAuthS_Init(t *testing.T) {
	t.Parallel()

	saved := models.User{ID: "user-1", Username: "bob", Email: "bob@x.io"}

	tests := []struct {
		name    string
		f       func(*mock_service.MockUserStoreI)
		wantOk  bool
		wantErr bool
	}{
		{
			name: "restores saved user",
			f: func(m *mock_service.MockUserStoreI) {
				m.EXPECT().CurrentUser(gomock.Any()).Return(saved, true, nil)
			},
			wantOk: true,
		},
		{
			name: "no saved user",
			f: func(m *mock_service.MockUserStoreI) {
				m.EXPECT().CurrentUser(gomock.Any()).Return(models.User{}, false, nil)
			},
		},
		{
			name: "store error",
			f: func(m *mock_service.MockUserStoreI) {
				m.EXPECT().CurrentUser(gomock.Any()).Return(models.User{}, false, models.ErrStorageUnavailable)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newAuthServiceMock(t, ctrl, tt.f)

			err := svc.Init(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			got, ok := svc.CurrentUser()
			assert.Equal(t, tt.wantOk, ok)
			if ok {
				assert.Equal(t, saved, got)
			}
		})
	}
}

func TestAuthS_LoginDelay(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testAppConfig()
	cfg.LoginDelay = time.Hour
	svc := NewAuthService(mock_service.NewMockUserStoreI(ctrl), cfg, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, "a@b.c", "pw")
	require.ErrorIs(t, err, context.Canceled)
}
