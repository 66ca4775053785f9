package service

import "sync"

type EventKind string

const (
	EventLogin        EventKind = "login"
	EventLogout       EventKind = "logout"
	EventQuizCreated  EventKind = "quiz_created"
	EventQuizUpdated  EventKind = "quiz_updated"
	EventQuizDeleted  EventKind = "quiz_deleted"
	EventAttemptSaved EventKind = "attempt_saved"
)

type Event struct {
	Kind   EventKind
	UserID string
	QuizID string
}

// notifier fans events out to subscribers. Handlers run synchronously on the
// publishing goroutine, after the state change is visible.
type notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Event)
}

// Subscribe registers fn and returns a function that removes it.
func (n *notifier) Subscribe(fn func(Event)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs == nil {
		n.subs = make(map[int]func(Event))
	}
	id := n.nextID
	n.nextID++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

func (n *notifier) publish(e Event) {
	n.mu.Lock()
	subs := make([]func(Event), 0, len(n.subs))
	for _, fn := range n.subs {
		subs = append(subs, fn)
	}
	n.mu.Unlock()

	for _, fn := range subs {
		fn(e)
	}
}
