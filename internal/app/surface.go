package app

import (
	"context"
	"io"

	"github.com/campusnexus/nexus/internal/api"
	"github.com/campusnexus/nexus/internal/i18n"
	"github.com/campusnexus/nexus/internal/notify"
	"github.com/campusnexus/nexus/internal/view"
)

// Backend is the subset of the REST client the coordinator drives.
type Backend interface {
	Health(ctx context.Context) (*api.HealthResponse, error)
	Chat(ctx context.Context, req api.ChatRequest) (*api.ChatResponse, error)
	Upload(ctx context.Context, filename string, content io.Reader) (*api.UploadResponse, error)
	Analytics(ctx context.Context) (*api.AnalyticsResponse, error)
	KnowledgeGraph(ctx context.Context) (*api.GraphResponse, error)
	GovernanceStats(ctx context.Context) (*api.GovernanceStats, error)
	PendingDocuments(ctx context.Context) (*api.PendingResponse, error)
	Review(ctx context.Context, req api.ApprovalRequest) error
}

// Surface writes view-models into a concrete UI. Implementations must drop
// updates for elements they are not currently showing instead of failing.
type Surface interface {
	notify.Sink

	ApplyTranslations(t i18n.Table)
	ActivateTab(tab Tab)

	ClearInput()
	RemoveWelcome()
	AppendMessage(m view.ChatMessage)
	RemoveMessage(id string)
	ScrollToLatest()

	AddUpload(item view.UploadItem)
	UpdateUpload(item view.UploadItem)

	RenderAnalytics(v view.AnalyticsView)
	RenderGraph(v view.GraphView)
	RenderGovernance(v view.GovernanceView)
	RenderHealth(v view.HealthView)
}

// Prompter asks the operator for free text. ok is false when the operator
// dismissed the dialog.
type Prompter interface {
	Prompt(ctx context.Context, label string) (value string, ok bool, err error)
}

// File is one upload candidate.
type File struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}
