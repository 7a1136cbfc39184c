// Package notify is the side channel for failed remote writes. Local state
// is applied optimistically before persistence resolves, so a failed write
// only ever surfaces here and never triggers a rollback.
package notify

import (
	"sync"
	"time"
)

// maxEntries bounds the feed; older notifications fall off the end.
const maxEntries = 20

// Notification is one non-blocking user-facing message.
type Notification struct {
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Feed is a bounded in-memory notification list, newest first.
type Feed struct {
	mu      sync.Mutex
	entries []Notification
	now     func() time.Time
}

func NewFeed() *Feed {
	return &Feed{now: time.Now}
}

// Push records a notification.
func (f *Feed) Push(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append([]Notification{{Message: message, At: f.now()}}, f.entries...)
	if len(f.entries) > maxEntries {
		f.entries = f.entries[:maxEntries]
	}
}

// Recent returns a copy of the current notifications, newest first.
func (f *Feed) Recent() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, len(f.entries))
	copy(out, f.entries)
	return out
}
