package dashboard

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"

	"github.com/campusnexus/nexus/internal/app"
	"github.com/campusnexus/nexus/internal/i18n"
	"github.com/campusnexus/nexus/internal/notify"
	"github.com/campusnexus/nexus/internal/view"
)

const writeWait = 10 * time.Second

// event is the outgoing websocket message format.
type event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type translationsEvent struct {
	Language string            `json:"language"`
	Strings  map[string]string `json:"strings"`
}

type tabEvent struct {
	Tab app.Tab `json:"tab"`
}

type idEvent struct {
	ID string `json:"id"`
}

type messageEvent struct {
	view.ChatMessage
	HTML string `json:"html,omitempty"`
}

type promptEvent struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// wsSurface turns surface calls into websocket events. Without an attached
// connection every event is dropped.
type wsSurface struct {
	md     goldmark.Markdown
	logger *zap.Logger

	mu   sync.Mutex
	conn *websocket.Conn
}

var _ app.Surface = (*wsSurface)(nil)

func (s *wsSurface) attach(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil && s.conn != conn {
		s.conn.Close()
	}
	s.conn = conn
}

func (s *wsSurface) detach(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == conn {
		s.conn = nil
	}
}

func (s *wsSurface) connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil
}

func (s *wsSurface) emit(typ string, data interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return
	}
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(event{Type: typ, Data: data}); err != nil {
		s.logger.Debug("websocket write", zap.String("event", typ), zap.Error(err))
	}
}

func (s *wsSurface) ApplyTranslations(t i18n.Table) {
	strs := make(map[string]string)
	for _, k := range i18n.Keys() {
		strs[k] = t.T(k)
	}
	s.emit("translations", translationsEvent{Language: t.Code(), Strings: strs})
}

func (s *wsSurface) ActivateTab(tab app.Tab) { s.emit("tab", tabEvent{Tab: tab}) }
func (s *wsSurface) ClearInput()             { s.emit("clear_input", nil) }
func (s *wsSurface) RemoveWelcome()          { s.emit("remove_welcome", nil) }
func (s *wsSurface) ScrollToLatest()         { s.emit("scroll", nil) }
func (s *wsSurface) RemoveMessage(id string) { s.emit("remove_message", idEvent{ID: id}) }

func (s *wsSurface) AppendMessage(m view.ChatMessage) {
	ev := messageEvent{ChatMessage: m}
	if m.Role == view.RoleAssistant && !m.Placeholder && !m.Fallback {
		ev.HTML = renderMarkdown(s.md, m.Text)
	}
	s.emit("message", ev)
}

func (s *wsSurface) AddUpload(item view.UploadItem)    { s.emit("upload", item) }
func (s *wsSurface) UpdateUpload(item view.UploadItem) { s.emit("upload", item) }

func (s *wsSurface) RenderAnalytics(v view.AnalyticsView)   { s.emit("analytics", v) }
func (s *wsSurface) RenderGraph(v view.GraphView)           { s.emit("graph", v) }
func (s *wsSurface) RenderGovernance(v view.GovernanceView) { s.emit("governance", v) }
func (s *wsSurface) RenderHealth(v view.HealthView)         { s.emit("health", v) }

func (s *wsSurface) ShowNotification(n notify.Notification)    { s.emit("notify_show", n) }
func (s *wsSurface) FadeNotification(n notify.Notification)    { s.emit("notify_fade", n) }
func (s *wsSurface) DismissNotification(n notify.Notification) { s.emit("notify_dismiss", n) }
