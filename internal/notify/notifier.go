// Package notify presents one transient notification at a time.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultDuration is how long a notification stays fully visible.
	DefaultDuration = 3000 * time.Millisecond
	// DefaultFade is the length of the fade-out before removal.
	DefaultFade = 300 * time.Millisecond
)

// Notification is the currently visible message.
type Notification struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Sink receives notification lifecycle transitions.
type Sink interface {
	ShowNotification(n Notification)
	FadeNotification(n Notification)
	DismissNotification(n Notification)
}

// Notifier replaces, fades and removes notifications on a timer.
type Notifier struct {
	sink     Sink
	duration time.Duration
	fade     time.Duration

	mu      sync.Mutex
	current *Notification
	timer   *time.Timer

	// generation invalidates timers that belong to a replaced notification.
	generation uint64
}

// New creates a notifier. Zero durations fall back to the defaults.
func New(sink Sink, duration, fade time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if fade <= 0 {
		fade = DefaultFade
	}
	return &Notifier{sink: sink, duration: duration, fade: fade}
}

// Notify shows message, removing any notification that is still visible.
func (n *Notifier) Notify(message string) Notification {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	prev := n.current
	n.generation++
	gen := n.generation
	note := Notification{ID: uuid.NewString(), Message: message}
	n.current = &note
	n.timer = time.AfterFunc(n.duration, func() { n.startFade(gen) })
	n.mu.Unlock()

	if prev != nil {
		n.sink.DismissNotification(*prev)
	}
	n.sink.ShowNotification(note)
	return note
}

// Current returns the visible notification, if any.
func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notification{}, false
	}
	return *n.current, true
}

// Close cancels pending timers without touching the sink.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.generation++
	n.current = nil
}

func (n *Notifier) startFade(gen uint64) {
	n.mu.Lock()
	if gen != n.generation || n.current == nil {
		n.mu.Unlock()
		return
	}
	note := *n.current
	n.timer = time.AfterFunc(n.fade, func() { n.remove(gen) })
	n.mu.Unlock()

	n.sink.FadeNotification(note)
}

func (n *Notifier) remove(gen uint64) {
	n.mu.Lock()
	if gen != n.generation || n.current == nil {
		n.mu.Unlock()
		return
	}
	note := *n.current
	n.current = nil
	n.timer = nil
	n.mu.Unlock()

	n.sink.DismissNotification(note)
}
