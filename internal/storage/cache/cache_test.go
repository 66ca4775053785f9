package cache

import (
	"context"
	"testing"

	"github.com/DanRulev/quizroom/internal/models"
	"github.com/DanRulev/quizroom/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Session(t *testing.T) {
	t.Parallel()

	c := NewCache()

	_, _, ok := c.Session()
	assert.False(t, ok)

	s := session.New(models.Quiz{ID: "quiz-1"}, "user-1", 60, nil)
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	c.SetSession(s, cancel)

	got, gotCancel, ok := c.Session()
	require.True(t, ok)
	assert.Same(t, s, got)
	assert.NotNil(t, gotCancel)

	c.DeleteSession()

	_, _, ok = c.Session()
	assert.False(t, ok)
}

func TestCache_SetCancel(t *testing.T) {
	t.Parallel()

	c := NewCache()

	first := session.New(models.Quiz{ID: "quiz-1"}, "user-1", 60, nil)
	second := session.New(models.Quiz{ID: "quiz-2"}, "user-1", 60, nil)

	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.False(t, c.SetCancel(first, cancel))

	c.SetSession(first, nil)
	require.True(t, c.SetCancel(first, cancel))
	_, gotCancel, _ := c.Session()
	assert.NotNil(t, gotCancel)

	c.SetSession(second, nil)
	assert.False(t, c.SetCancel(first, cancel))

	got, gotCancel, ok := c.Session()
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Nil(t, gotCancel)

	c.DeleteSession()
	assert.False(t, c.SetCancel(second, cancel))
	_, _, ok = c.Session()
	assert.False(t, ok)
}
