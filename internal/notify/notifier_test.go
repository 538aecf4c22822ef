package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	events []string
}

func (s *recordingSink) record(kind string, n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, kind+":"+n.Message)
}

func (s *recordingSink) ShowNotification(n Notification)    { s.record("show", n) }
func (s *recordingSink) FadeNotification(n Notification)    { s.record("fade", n) }
func (s *recordingSink) DismissNotification(n Notification) { s.record("dismiss", n) }

func (s *recordingSink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.events...)
}

func TestNotifyAutoDismisses(t *testing.T) {
	sink := &recordingSink{}
	n := New(sink, 20*time.Millisecond, 10*time.Millisecond)

	n.Notify("Language changed to English")
	_, visible := n.Current()
	require.True(t, visible)

	require.Eventually(t, func() bool {
		_, visible := n.Current()
		return !visible
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{
		"show:Language changed to English",
		"fade:Language changed to English",
		"dismiss:Language changed to English",
	}, sink.snapshot())
}

func TestNotifyReplacesVisible(t *testing.T) {
	sink := &recordingSink{}
	n := New(sink, 40*time.Millisecond, 10*time.Millisecond)

	n.Notify("first")
	n.Notify("second")

	cur, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, "second", cur.Message)

	require.Eventually(t, func() bool {
		_, visible := n.Current()
		return !visible
	}, time.Second, 5*time.Millisecond)

	// The first notification never fades on its own; it is removed when
	// replaced, and only the second goes through the timed path.
	assert.Equal(t, []string{
		"show:first",
		"dismiss:first",
		"show:second",
		"fade:second",
		"dismiss:second",
	}, sink.snapshot())
}

func TestCloseStopsTimers(t *testing.T) {
	sink := &recordingSink{}
	n := New(sink, 10*time.Millisecond, 10*time.Millisecond)
	n.Notify("bye")
	n.Close()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{"show:bye"}, sink.snapshot())
}

func TestDefaults(t *testing.T) {
	n := New(&recordingSink{}, 0, 0)
	assert.Equal(t, DefaultDuration, n.duration)
	assert.Equal(t, DefaultFade, n.fade)
}
