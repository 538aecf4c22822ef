package app

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/campusnexus/nexus/internal/api"
	"github.com/campusnexus/nexus/internal/i18n"
	"github.com/campusnexus/nexus/internal/notify"
	"github.com/campusnexus/nexus/internal/view"
)

type fakeBackend struct {
	mu sync.Mutex

	chatReqs  []api.ChatRequest
	chatResp  *api.ChatResponse
	chatErr   error
	uploads   []string
	uploadFn  func(name string, body []byte) (*api.UploadResponse, error)
	analytics *api.AnalyticsResponse
	graph     *api.GraphResponse
	stats     *api.GovernanceStats
	pending   *api.PendingResponse
	readErr   error
	pendErr   error
	reviews   []api.ApprovalRequest
	reviewErr error
	health    *api.HealthResponse
	healthErr error

	statsCalls  int
	healthCalls int
}

func (f *fakeBackend) Health(context.Context) (*api.HealthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.healthCalls++
	return f.health, f.healthErr
}

func (f *fakeBackend) Chat(_ context.Context, req api.ChatRequest) (*api.ChatResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chatReqs = append(f.chatReqs, req)
	return f.chatResp, f.chatErr
}

func (f *fakeBackend) Upload(_ context.Context, name string, content io.Reader) (*api.UploadResponse, error) {
	body, err := io.ReadAll(content)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.uploads = append(f.uploads, name)
	fn := f.uploadFn
	f.mu.Unlock()
	if fn == nil {
		return nil, errors.New("no upload handler")
	}
	return fn(name, body)
}

func (f *fakeBackend) Analytics(context.Context) (*api.AnalyticsResponse, error) {
	return f.analytics, f.readErr
}

func (f *fakeBackend) KnowledgeGraph(context.Context) (*api.GraphResponse, error) {
	return f.graph, f.readErr
}

func (f *fakeBackend) GovernanceStats(context.Context) (*api.GovernanceStats, error) {
	f.mu.Lock()
	f.statsCalls++
	f.mu.Unlock()
	return f.stats, f.readErr
}

func (f *fakeBackend) PendingDocuments(context.Context) (*api.PendingResponse, error) {
	if f.pendErr != nil {
		return nil, f.pendErr
	}
	return f.pending, f.readErr
}

func (f *fakeBackend) Review(_ context.Context, req api.ApprovalRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviews = append(f.reviews, req)
	return f.reviewErr
}

// recordingSurface keeps the latest rendering of every element plus an
// ordered event log.
type recordingSurface struct {
	mu sync.Mutex

	events     []string
	language   string
	tab        Tab
	messages   []view.ChatMessage
	uploads    map[string]view.UploadItem
	progress   []int
	analytics  []view.AnalyticsView
	graphs     []view.GraphView
	governance []view.GovernanceView
	health     []view.HealthView
	notes      []string
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{uploads: map[string]view.UploadItem{}}
}

func (s *recordingSurface) log(e string) { s.events = append(s.events, e) }

func (s *recordingSurface) ApplyTranslations(t i18n.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = t.Code()
	s.log("translations:" + t.Code())
}

func (s *recordingSurface) ActivateTab(tab Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = tab
	s.log("tab:" + string(tab))
}

func (s *recordingSurface) ClearInput() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log("clear")
}

func (s *recordingSurface) RemoveWelcome() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log("welcome-removed")
}

func (s *recordingSurface) AppendMessage(m view.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
	s.log("append:" + string(m.Role))
}

func (s *recordingSurface) RemoveMessage(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.messages {
		if m.ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			break
		}
	}
	s.log("remove")
}

func (s *recordingSurface) ScrollToLatest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log("scroll")
}

func (s *recordingSurface) AddUpload(item view.UploadItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[item.ID] = item
}

func (s *recordingSurface) UpdateUpload(item view.UploadItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[item.ID] = item
	if item.Status == view.UploadUploading {
		s.progress = append(s.progress, item.Progress)
	}
}

func (s *recordingSurface) RenderAnalytics(v view.AnalyticsView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analytics = append(s.analytics, v)
}

func (s *recordingSurface) RenderGraph(v view.GraphView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graphs = append(s.graphs, v)
}

func (s *recordingSurface) RenderGovernance(v view.GovernanceView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.governance = append(s.governance, v)
}

func (s *recordingSurface) RenderHealth(v view.HealthView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.health = append(s.health, v)
}

func (s *recordingSurface) ShowNotification(n notify.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append(s.notes, n.Message)
}

func (s *recordingSurface) FadeNotification(notify.Notification)    {}
func (s *recordingSurface) DismissNotification(notify.Notification) {}

func (s *recordingSurface) snapshotMessages() []view.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]view.ChatMessage(nil), s.messages...)
}

func (s *recordingSurface) snapshotEvents() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.events...)
}

type stubPrompter struct {
	value string
	ok    bool
	err   error
	label string
}

func (p *stubPrompter) Prompt(_ context.Context, label string) (string, bool, error) {
	p.label = label
	return p.value, p.ok, p.err
}
