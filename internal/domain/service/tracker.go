package service

import "sync"

// NotificationTracker remembers, per week key, which one-shot notifications
// this process already sent. It is safe for concurrent use.
type NotificationTracker struct {
	mu         sync.Mutex
	turnStart  map[string]bool
	completion map[string]bool
}

func NewNotificationTracker() *NotificationTracker {
	return &NotificationTracker{
		turnStart:  make(map[string]bool),
		completion: make(map[string]bool),
	}
}

// MarkTurnStart marks the turn start of weekKey as sent.
// It returns false when it was already marked.
func (t *NotificationTracker) MarkTurnStart(weekKey string) bool {
	return mark(&t.mu, t.turnStart, weekKey)
}

// UnmarkTurnStart allows the turn start of weekKey to be sent again
func (t *NotificationTracker) UnmarkTurnStart(weekKey string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.turnStart, weekKey)
}

// MarkCompleted marks the completion of weekKey as announced.
// It returns false when it was already marked.
func (t *NotificationTracker) MarkCompleted(weekKey string) bool {
	return mark(&t.mu, t.completion, weekKey)
}

// ResetCompletion re-arms the completion notification after a task was unchecked
func (t *NotificationTracker) ResetCompletion(weekKey string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.completion, weekKey)
}

func mark(mu *sync.Mutex, marks map[string]bool, key string) bool {
	mu.Lock()
	defer mu.Unlock()

	if marks[key] {
		return false
	}
	marks[key] = true
	return true
}
