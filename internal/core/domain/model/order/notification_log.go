package order

import (
	"sync"
	"time"
)

// Notification is one message delivered to a customer.
type Notification struct {
	Timestamp time.Time
	Message   string
}

// NotificationLog is the append-only record of messages sent to a customer.
// It is safe for concurrent use since deliveries for the same customer may be
// advanced in parallel.
type NotificationLog struct {
	mu      sync.RWMutex
	entries []Notification
}

// NewNotificationLog returns an empty log.
func NewNotificationLog() *NotificationLog {
	return &NotificationLog{entries: make([]Notification, 0)}
}

// Append records a notification.
func (l *NotificationLog) Append(n Notification) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, n)
}

// Entries returns a copy of all notifications in insertion order.
func (l *NotificationLog) Entries() []Notification {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Notification, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of notifications.
func (l *NotificationLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
