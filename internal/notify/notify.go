// Package notify implements the transient notification stack: short-lived
// success/error messages shown after each dashboard action.
package notify

import (
	"sync"
	"time"
)

const (
	KindSuccess = "success"
	KindError   = "error"

	// VisibleFor is how long a notification stays fully visible.
	VisibleFor = 3 * time.Second
	// ExitTransition is the fade-out applied after the visible window.
	ExitTransition = 300 * time.Millisecond
)

// Notification is one transient message. Notifications stack and may
// visually overlap; no queue limit is enforced.
type Notification struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	CreatedAt time.Time
}

// ExpiresAt returns the instant the notification is removed, including
// the exit transition.
func (n Notification) ExpiresAt() time.Time {
	return n.CreatedAt.Add(VisibleFor + ExitTransition)
}

// Center holds the active notification stack. Safe for concurrent use.
type Center struct {
	mu     sync.Mutex
	nextID int64
	stack  []Notification
	now    func() time.Time
}

// NewCenter creates an empty notification center.
func NewCenter() *Center {
	return &Center{now: time.Now}
}

// Success pushes a success notification and returns it.
func (c *Center) Success(message string) Notification {
	return c.push(KindSuccess, message)
}

// Error pushes an error notification and returns it.
func (c *Center) Error(message string) Notification {
	return c.push(KindError, message)
}

func (c *Center) push(kind, message string) Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	n := Notification{
		ID:        c.nextID,
		Kind:      kind,
		Message:   message,
		CreatedAt: c.now(),
	}
	c.stack = append(c.stack, n)
	return n
}

// Active returns the notifications still within their display window,
// oldest first, pruning everything expired.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	active := c.stack[:0]
	for _, n := range c.stack {
		if now.Before(n.ExpiresAt()) {
			active = append(active, n)
		}
	}
	c.stack = active

	out := make([]Notification, len(active))
	copy(out, active)
	return out
}
