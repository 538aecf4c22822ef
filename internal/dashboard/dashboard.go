// Package dashboard serves the browser surface: an embedded page that talks
// to a per-tab session over a websocket.
package dashboard

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/patrickmn/go-cache"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"

	"github.com/campusnexus/nexus/internal/app"
)

// DefaultSessionTTL is how long a disconnected session can be resumed.
const DefaultSessionTTL = 1 * time.Hour

// Options configures the sessions the dashboard creates.
type Options struct {
	Session        app.Options
	HealthInterval time.Duration
	SessionTTL     time.Duration
}

// Dashboard provides the web surface over the CampusNexus backend.
type Dashboard struct {
	backend  app.Backend
	opts     Options
	logger   *zap.Logger
	md       goldmark.Markdown
	sessions *cache.Cache
}

// New creates a new Dashboard.
func New(backend app.Backend, opts Options, logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	sessions := cache.New(opts.SessionTTL, 10*time.Minute)
	sessions.OnEvicted(func(id string, v interface{}) {
		if s, ok := v.(*session); ok {
			logger.Debug("session expired", zap.String("session", id))
			s.close()
		}
	})
	return &Dashboard{
		backend:  backend,
		opts:     opts,
		logger:   logger,
		md:       newMarkdown(),
		sessions: sessions,
	}
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.ServeIndex)
	r.Get("/api/languages", d.handleLanguages)
	r.Get("/api/sessions/{id}", d.handleSessionState)
	r.Post("/api/sessions/{id}/upload", d.handleUpload)
	r.Get("/ws", d.handleWebSocket)
}

// Close ends every session.
func (d *Dashboard) Close() {
	for id := range d.sessions.Items() {
		d.sessions.Delete(id)
	}
}
