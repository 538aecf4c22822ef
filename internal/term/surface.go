// Package term renders the nexus session on a terminal.
package term

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/campusnexus/nexus/internal/app"
	"github.com/campusnexus/nexus/internal/i18n"
	"github.com/campusnexus/nexus/internal/notify"
	"github.com/campusnexus/nexus/internal/progress"
	"github.com/campusnexus/nexus/internal/view"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	userColor    = color.New(color.FgBlue, color.Bold)
	botColor     = color.New(color.FgGreen, color.Bold)
	dimColor     = color.New(color.Faint)
	noticeColor  = color.New(color.FgMagenta)
	errorColor   = color.New(color.FgRed)
	okColor      = color.New(color.FgGreen)

	dotColors = map[string]*color.Color{
		"success": color.New(color.FgGreen),
		"warning": color.New(color.FgYellow),
		"danger":  color.New(color.FgRed),
		"muted":   color.New(color.Faint),
	}
)

// Surface prints view-models as they arrive. Panel renders for a tab other
// than the active one are dropped.
type Surface struct {
	out         io.Writer
	newReporter func(io.Writer) progress.Reporter

	mu          sync.Mutex
	t           i18n.Table
	tab         app.Tab
	pendingLine string
	reporters   map[string]progress.Reporter
	health      view.HealthState
}

// NewSurface creates a terminal surface writing to out.
func NewSurface(out io.Writer) *Surface {
	return &Surface{
		out:         out,
		newReporter: progress.NewReporter,
		t:           i18n.Lookup(i18n.DefaultLanguage),
		tab:         app.TabChat,
		reporters:   map[string]progress.Reporter{},
	}
}

var _ app.Surface = (*Surface)(nil)

// Welcome prints the chat greeting.
func (s *Surface) Welcome() {
	s.mu.Lock()
	defer s.mu.Unlock()
	headingColor.Fprintln(s.out, s.t.T("welcomeTitle"))
	dimColor.Fprintln(s.out, s.t.T("welcomeSubtitle"))
	fmt.Fprintln(s.out)
}

func (s *Surface) ApplyTranslations(t i18n.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t = t
}

func (s *Surface) ActivateTab(tab app.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = tab
	s.clearPendingLocked()
	fmt.Fprintln(s.out)
	headingColor.Fprintf(s.out, "── %s ──\n", s.t.T(tab.TitleKey()))
	if tab == app.TabUpload {
		dimColor.Fprintln(s.out, s.t.T("uploadHint"))
	}
}

// ClearInput is a no-op; the line editor has already consumed the input.
func (s *Surface) ClearInput() {}

// RemoveWelcome is a no-op; the greeting scrolls away.
func (s *Surface) RemoveWelcome() {}

// ScrollToLatest is a no-op; terminals follow the newest line.
func (s *Surface) ScrollToLatest() {}

func (s *Surface) AppendMessage(m view.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearPendingLocked()

	if m.Placeholder {
		dimColor.Fprint(s.out, m.Text)
		s.pendingLine = m.ID
		return
	}

	if m.Role == view.RoleUser {
		userColor.Fprint(s.out, "› ")
		fmt.Fprintln(s.out, m.Text)
		return
	}

	botColor.Fprint(s.out, "◆ ")
	if m.Fallback {
		errorColor.Fprintln(s.out, m.Text)
		return
	}
	fmt.Fprintln(s.out, m.Text)
	if m.Confidence != nil {
		dimColor.Fprintln(s.out, "  "+m.ConfidenceLine(s.t))
	}
	if len(m.Sources) > 0 {
		dimColor.Fprintf(s.out, "  %s:\n", s.t.T("sources"))
		for _, src := range m.Sources {
			fmt.Fprintf(s.out, "    %s\n", src.Heading(s.t))
			if src.Excerpt != "" {
				dimColor.Fprintf(s.out, "      %s\n", excerpt(src.Excerpt, 160))
			}
		}
	}
	if m.LatencySecs != nil {
		dimColor.Fprintf(s.out, "  (%.2fs)\n", *m.LatencySecs)
	}
	fmt.Fprintln(s.out)
}

// RemoveMessage erases the thinking line if it is still the last output.
func (s *Surface) RemoveMessage(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pendingLine == id {
		s.clearPendingLocked()
	}
}

func (s *Surface) clearPendingLocked() {
	if s.pendingLine == "" {
		return
	}
	fmt.Fprint(s.out, "\r\033[K")
	s.pendingLine = ""
}

func (s *Surface) AddUpload(item view.UploadItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.newReporter(s.out)
	r.Start(fmt.Sprintf("%s (%s)", item.Name, item.SizeText))
	s.reporters[item.ID] = r
}

func (s *Surface) UpdateUpload(item view.UploadItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reporters[item.ID]
	if !ok {
		return
	}
	switch item.Status {
	case view.UploadUploading:
		r.Update(item.Progress, "")
	case view.UploadSuccess:
		r.Update(item.Progress, "")
		r.Finish(okColor.Sprintf("✓ %s %s", item.Name, item.StatusText))
		delete(s.reporters, item.ID)
	default:
		r.Finish(errorColor.Sprintf("✗ %s %s", item.Name, item.StatusText))
		delete(s.reporters, item.ID)
	}
}

func (s *Surface) RenderAnalytics(v view.AnalyticsView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tab != app.TabAnalytics {
		return
	}
	fmt.Fprintf(s.out, "%s: %d\n", v.TotalLabel, v.TotalQuestions)
	fmt.Fprintf(s.out, "%s: %d\n", v.TopicsLabel, v.TopicCount)
	fmt.Fprintf(s.out, "%s: %s\n", v.YearsLabel, v.YearRange)
	fmt.Fprintln(s.out)
	headingColor.Fprintln(s.out, v.PatternsHeading)
	if v.CallToAction != "" {
		dimColor.Fprintln(s.out, "  "+v.CallToAction)
		return
	}
	for _, p := range v.Patterns {
		fmt.Fprintf(s.out, "  %s\n", p.Topic)
		dimColor.Fprintf(s.out, "    %s\n", p.Line(s.t))
	}
}

func (s *Surface) RenderGraph(v view.GraphView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tab != app.TabGraph {
		return
	}
	if v.Empty {
		fmt.Fprintln(s.out, v.Placeholder)
		dimColor.Fprintln(s.out, v.Hint)
		return
	}
	for _, tr := range v.Triples {
		fmt.Fprintf(s.out, "  %s\n", tr)
	}
	fmt.Fprintln(s.out)
	dimColor.Fprintln(s.out, v.StatsLine())
}

func (s *Surface) RenderGovernance(v view.GovernanceView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tab != app.TabGovernance {
		return
	}
	for _, c := range v.Cards {
		fmt.Fprintf(s.out, "%s %-18s %d\n", c.Icon, c.Label, c.Value)
	}
	if v.StatsOnly {
		return
	}
	fmt.Fprintln(s.out)
	headingColor.Fprintln(s.out, v.PendingHeading)
	if len(v.Pending) == 0 {
		dimColor.Fprintln(s.out, "  "+v.EmptyMessage)
		return
	}
	for _, p := range v.Pending {
		fmt.Fprintf(s.out, "  %s  %s\n", p.Filename, dimColor.Sprint(p.Uploaded))
		dimColor.Fprintf(s.out, "    id=%s  /approve %s | /reject %s\n", p.DocumentID, p.DocumentID, p.DocumentID)
	}
}

// RenderHealth prints the indicator when the state changes.
func (s *Surface) RenderHealth(v view.HealthView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.State == view.HealthChecking || v.State == s.health {
		return
	}
	s.health = v.State
	s.clearPendingLocked()
	fmt.Fprintln(s.out, HealthLine(v))
}

// HealthLine renders "● Connected (ollama: up, chroma: up)".
func HealthLine(v view.HealthView) string {
	dot, ok := dotColors[v.Dot]
	if !ok {
		dot = dimColor
	}
	line := dot.Sprint("●") + " " + v.Label
	var parts []string
	if v.Ollama != "" {
		parts = append(parts, "ollama: "+v.Ollama)
	}
	if v.Chroma != "" {
		parts = append(parts, "chroma: "+v.Chroma)
	}
	if len(parts) > 0 {
		line += dimColor.Sprintf(" (%s)", strings.Join(parts, ", "))
	}
	return line
}

func (s *Surface) ShowNotification(n notify.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearPendingLocked()
	noticeColor.Fprintf(s.out, "» %s\n", n.Message)
}

func (s *Surface) FadeNotification(notify.Notification)    {}
func (s *Surface) DismissNotification(notify.Notification) {}

func excerpt(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
