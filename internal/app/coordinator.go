package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/campusnexus/nexus/internal/api"
	"github.com/campusnexus/nexus/internal/i18n"
	"github.com/campusnexus/nexus/internal/notify"
	"github.com/campusnexus/nexus/internal/view"
)

// Options tunes the coordinator's controllers.
type Options struct {
	Language       string
	TopK           int
	UploadTick     time.Duration
	UploadStep     int
	UploadCap      int
	NotifyDuration time.Duration
	NotifyFade     time.Duration
	// Location renders governance timestamps. Nil means time.Local.
	Location *time.Location
}

func (o *Options) applyDefaults() {
	if o.TopK <= 0 {
		o.TopK = 5
	}
	if o.UploadTick <= 0 {
		o.UploadTick = 200 * time.Millisecond
	}
	if o.UploadStep <= 0 {
		o.UploadStep = 10
	}
	if o.UploadCap <= 0 {
		o.UploadCap = 90
	}
	if o.Location == nil {
		o.Location = time.Local
	}
}

// Coordinator owns the session state and drives the controllers against a
// backend and a surface. It is safe for concurrent use.
type Coordinator struct {
	backend  Backend
	surface  Surface
	prompter Prompter
	notifier *notify.Notifier
	logger   *zap.Logger
	opts     Options

	mu         sync.Mutex
	state      State
	welcome    bool
	messages   []view.ChatMessage
	uploads    []*view.UploadItem
	health     view.HealthState
	lastHealth *api.HealthResponse
}

// New creates a coordinator on the chat tab with health still being checked.
// prompter may be nil, in which case rejections use the default reason.
func New(backend Backend, surface Surface, prompter Prompter, logger *zap.Logger, opts Options) *Coordinator {
	opts.applyDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	lang := opts.Language
	if !i18n.IsSupported(lang) {
		lang = i18n.DefaultLanguage
	}
	return &Coordinator{
		backend:  backend,
		surface:  surface,
		prompter: prompter,
		notifier: notify.New(surface, opts.NotifyDuration, opts.NotifyFade),
		logger:   logger,
		opts:     opts,
		state:    State{Tab: TabChat, Language: lang},
		welcome:  true,
		health:   view.HealthChecking,
	}
}

// State returns a copy of the session state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Table returns the translation table of the active language.
func (c *Coordinator) Table() i18n.Table {
	return i18n.Lookup(c.State().Language)
}

// Messages returns the chat transcript in display order.
func (c *Coordinator) Messages() []view.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]view.ChatMessage(nil), c.messages...)
}

// Uploads returns every upload item rendered so far.
func (c *Coordinator) Uploads() []view.UploadItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]view.UploadItem, 0, len(c.uploads))
	for _, u := range c.uploads {
		out = append(out, *u)
	}
	return out
}

// Notify shows a transient notification on the surface.
func (c *Coordinator) Notify(message string) notify.Notification {
	return c.notifier.Notify(message)
}

// Start renders the initial state: translations, the active tab and the
// pending health indicator.
func (c *Coordinator) Start() {
	st := c.State()
	t := i18n.Lookup(st.Language)
	c.surface.ApplyTranslations(t)
	c.surface.ActivateTab(st.Tab)
	c.surface.RenderHealth(view.BuildHealth(view.HealthChecking, nil, t))
}

// SetLanguage switches the active language. Unknown codes fall back to en.
func (c *Coordinator) SetLanguage(code string) {
	if !i18n.IsSupported(code) {
		c.logger.Debug("unsupported language, using default", zap.String("language", code))
		code = i18n.DefaultLanguage
	}

	c.mu.Lock()
	c.state.Language = code
	health, last := c.health, c.lastHealth
	c.mu.Unlock()

	t := i18n.Lookup(code)
	c.surface.ApplyTranslations(t)
	c.surface.RenderHealth(view.BuildHealth(health, last, t))
	c.notifier.Notify(t.T("languageChanged"))
}

// SwitchTab activates tab and loads its data. Load failures are logged and
// leave the panel's previous rendering in place.
func (c *Coordinator) SwitchTab(ctx context.Context, tab Tab) error {
	tab, err := ParseTab(string(tab))
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.state.Tab = tab
	c.mu.Unlock()

	c.surface.ActivateTab(tab)
	c.Refresh(ctx)
	return nil
}

// Refresh reloads the active panel's data, if it has any.
func (c *Coordinator) Refresh(ctx context.Context) {
	switch c.State().Tab {
	case TabAnalytics:
		_, _ = c.LoadAnalytics(ctx)
	case TabGraph:
		_, _ = c.LoadGraph(ctx)
	case TabGovernance:
		_, _ = c.LoadGovernance(ctx)
	}
}

// Close stops notification timers.
func (c *Coordinator) Close() {
	c.notifier.Close()
}
