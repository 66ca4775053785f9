package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DanRulev/quizroom/internal/config"
	"github.com/DanRulev/quizroom/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	adminUserID   = "admin-user-1"
	adminUsername = "Admin User"
)

// AuthS is the demo identity service. It keeps the current user of the
// process in memory and mirrors it to the store.
type AuthS struct {
	notifier

	store UserStoreI
	cfg   config.AppConfig
	log   *zap.Logger

	mu   sync.RWMutex
	user *models.User
}

func NewAuthService(store UserStoreI, cfg config.AppConfig, log *zap.Logger) *AuthS {
	return &AuthS{
		store: store,
		cfg:   cfg,
		log:   log,
	}
}

func (a *AuthS) Init(ctx context.Context) error {
	user, ok, err := a.store.CurrentUser(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.user = nil
	if ok {
		a.user = &user
	}
	return nil
}

func (a *AuthS) CurrentUser() (models.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.user == nil {
		return models.User{}, false
	}
	return *a.user, true
}

func (a *AuthS) Login(ctx context.Context, email, password string) (models.User, error) {
	if err := a.wait(ctx); err != nil {
		return models.User{}, err
	}

	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return models.User{}, models.ErrInvalidCredentials
	}

	var user models.User
	if email == a.cfg.DemoAdminEmail && password == a.cfg.DemoAdminPassword {
		user = models.User{
			ID:       adminUserID,
			Username: adminUsername,
			Email:    email,
			IsAdmin:  true,
		}
	} else {
		user = newUser(usernameFromEmail(email), email)
	}

	if err := a.setCurrent(ctx, user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (a *AuthS) Register(ctx context.Context, username, email, password string) (models.User, error) {
	if err := a.wait(ctx); err != nil {
		return models.User{}, err
	}

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || strings.TrimSpace(password) == "" {
		return models.User{}, models.ErrMissingFields
	}

	user := newUser(username, email)
	if err := a.setCurrent(ctx, user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Logout forgets the current user. A store failure is only logged.
func (a *AuthS) Logout(ctx context.Context) {
	a.mu.Lock()
	prev := a.user
	a.user = nil
	a.mu.Unlock()

	if err := a.store.ClearCurrentUser(ctx); err != nil {
		a.log.Warn("failed to clear current user", zap.Error(err))
	}

	if prev != nil {
		a.publish(Event{Kind: EventLogout, UserID: prev.ID})
	}
}

func (a *AuthS) setCurrent(ctx context.Context, user models.User) error {
	if err := a.store.SaveCurrentUser(ctx, user); err != nil {
		a.log.Warn("failed to save current user", zap.String("user_id", user.ID), zap.Error(err))
		return fmt.Errorf("save current user: %w", err)
	}

	a.mu.Lock()
	a.user = &user
	a.mu.Unlock()

	a.publish(Event{Kind: EventLogin, UserID: user.ID})
	return nil
}

func (a *AuthS) wait(ctx context.Context) error {
	if a.cfg.LoginDelay <= 0 {
		return nil
	}

	t := time.NewTimer(a.cfg.LoginDelay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func newUser(username, email string) models.User {
	return models.User{
		ID:       "user-" + uuid.NewString(),
		Username: username,
		Email:    email,
	}
}

func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
