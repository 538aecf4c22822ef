package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type promptReply struct {
	value string
	ok    bool
}

// wsPrompter asks the page for text and waits for the matching reply
// message. The websocket reader keeps running while it waits.
type wsPrompter struct {
	surface *wsSurface

	mu      sync.Mutex
	pending map[string]chan promptReply
}

func newPrompter(surface *wsSurface) *wsPrompter {
	return &wsPrompter{surface: surface, pending: make(map[string]chan promptReply)}
}

func (p *wsPrompter) Prompt(ctx context.Context, label string) (string, bool, error) {
	if !p.surface.connected() {
		return "", false, nil
	}

	id := uuid.NewString()
	ch := make(chan promptReply, 1)
	p.mu.Lock()
	p.pending[id] = ch
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		delete(p.pending, id)
		p.mu.Unlock()
	}()

	p.surface.emit("prompt", promptEvent{ID: id, Label: label})

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case r := <-ch:
		return r.value, r.ok, nil
	}
}

// resolve delivers a reply. It reports whether a prompt was waiting for it.
func (p *wsPrompter) resolve(id, value string, ok bool) bool {
	p.mu.Lock()
	ch, found := p.pending[id]
	p.mu.Unlock()
	if !found {
		return false
	}
	select {
	case ch <- promptReply{value: value, ok: ok}:
		return true
	default:
		return false
	}
}

// cancelAll dismisses every waiting prompt.
func (p *wsPrompter) cancelAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, ch := range p.pending {
		select {
		case ch <- promptReply{}:
		default:
		}
	}
}
