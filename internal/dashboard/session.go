package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/patrickmn/go-cache"

	"github.com/campusnexus/nexus/internal/app"
)

// session is one browser tab's coordinator. It outlives its websocket so a
// reload can resume the transcript, and work it started keeps running
// until the session itself is closed.
type session struct {
	id       string
	coord    *app.Coordinator
	surface  *wsSurface
	prompter *wsPrompter

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	stopHealth context.CancelFunc

	qmu   sync.Mutex
	queue []clientMessage
	wake  chan struct{}
}

func (d *Dashboard) newSession() *session {
	surface := &wsSurface{md: d.md, logger: d.logger}
	prompter := newPrompter(surface)
	ctx, cancel := context.WithCancel(context.Background())
	s := &session{
		id:       uuid.NewString(),
		surface:  surface,
		prompter: prompter,
		ctx:      ctx,
		cancel:   cancel,
		wake:     make(chan struct{}, 1),
	}
	s.coord = app.New(d.backend, surface, prompter, d.logger.With(zapSession(s.id)), d.opts.Session)
	d.sessions.Set(s.id, s, cache.DefaultExpiration)
	go s.work(d)
	return s
}

// enqueue schedules msg behind every message received before it. It never
// blocks, so the reader stays free to deliver prompt replies.
func (s *session) enqueue(msg clientMessage) {
	s.qmu.Lock()
	s.queue = append(s.queue, msg)
	s.qmu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *session) next() (clientMessage, bool) {
	s.qmu.Lock()
	defer s.qmu.Unlock()
	if len(s.queue) == 0 {
		return clientMessage{}, false
	}
	msg := s.queue[0]
	s.queue = s.queue[1:]
	return msg, true
}

// work runs queued operations one at a time, in arrival order, until the
// session is closed.
func (s *session) work(d *Dashboard) {
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-s.wake:
		}
		for {
			msg, ok := s.next()
			if !ok {
				break
			}
			d.dispatch(s.ctx, s, msg)
		}
	}
}

// lookup returns a live session and extends its lifetime.
func (d *Dashboard) lookup(id string) (*session, bool) {
	if id == "" {
		return nil, false
	}
	v, ok := d.sessions.Get(id)
	if !ok {
		return nil, false
	}
	s := v.(*session)
	d.touch(s)
	return s, true
}

// touch restarts the session's expiry clock.
func (d *Dashboard) touch(s *session) {
	d.sessions.Set(s.id, s, cache.DefaultExpiration)
}

// attach binds conn, replays the session and starts health polling.
func (d *Dashboard) attach(s *session, conn *websocket.Conn) {
	s.surface.attach(conn)
	s.surface.emit("session", sessionEvent{ID: s.id, State: s.coord.State()})

	s.coord.Start()
	msgs := s.coord.Messages()
	if len(msgs) > 0 {
		s.surface.RemoveWelcome()
	}
	for _, m := range msgs {
		s.surface.AppendMessage(m)
	}
	for _, u := range s.coord.Uploads() {
		s.surface.AddUpload(u)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	if s.stopHealth != nil {
		s.stopHealth()
	}
	s.stopHealth = cancel
	s.mu.Unlock()

	go app.NewHealthMonitor(s.coord, d.opts.HealthInterval).Run(ctx)
	s.enqueue(clientMessage{Type: "refresh"})
}

// detach unbinds conn if it is still the session's connection.
func (d *Dashboard) detach(s *session, conn *websocket.Conn) {
	s.surface.detach(conn)
	if s.surface.connected() {
		return
	}
	s.prompter.cancelAll()
	s.mu.Lock()
	if s.stopHealth != nil {
		s.stopHealth()
		s.stopHealth = nil
	}
	s.mu.Unlock()
	d.touch(s)
}

func (s *session) close() {
	s.mu.Lock()
	if s.stopHealth != nil {
		s.stopHealth()
		s.stopHealth = nil
	}
	s.mu.Unlock()
	s.prompter.cancelAll()
	s.cancel()
	s.coord.Close()
}

type sessionEvent struct {
	ID    string    `json:"id"`
	State app.State `json:"state"`
}
