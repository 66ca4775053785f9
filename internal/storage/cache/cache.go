package cache

import (
	"context"
	"sync"

	"github.com/DanRulev/quizroom/internal/session"
)

// Cache holds the single active play session and the cancel func of its countdown.
type Cache struct {
	mu      sync.Mutex
	session *session.Session
	cancel  context.CancelFunc
}

func NewCache() *Cache {
	return &Cache{}
}

func (c *Cache) SetSession(s *session.Session, cancel context.CancelFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = s
	c.cancel = cancel
}

// SetCancel attaches cancel to s only while s is still the cached session.
func (c *Cache) SetCancel(s *session.Session, cancel context.CancelFunc) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != s {
		return false
	}
	c.cancel = cancel
	return true
}

func (c *Cache) Session() (*session.Session, context.CancelFunc, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session, c.cancel, c.session != nil
}

func (c *Cache) DeleteSession() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = nil
	c.cancel = nil
}
