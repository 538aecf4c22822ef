package mcp

import (
	"fmt"
	"strings"

	"github.com/campusnexus/nexus/internal/i18n"
	"github.com/campusnexus/nexus/internal/view"
)

func formatAnswer(m view.ChatMessage, t i18n.Table) string {
	var b strings.Builder
	b.WriteString(m.Text)
	b.WriteString("\n")
	if m.Confidence != nil {
		fmt.Fprintf(&b, "\n%s\n", m.ConfidenceLine(t))
	}
	if len(m.Sources) > 0 {
		fmt.Fprintf(&b, "\n%s:\n", t.T("sources"))
		for _, src := range m.Sources {
			fmt.Fprintf(&b, "%s\n", src.Heading(t))
			if src.Excerpt != "" {
				fmt.Fprintf(&b, "   %s\n", src.Excerpt)
			}
		}
	}
	return b.String()
}

func formatAnalytics(v view.AnalyticsView, t i18n.Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", v.Title)
	fmt.Fprintf(&b, "- %s: %d\n", v.TotalLabel, v.TotalQuestions)
	fmt.Fprintf(&b, "- %s: %d\n", v.TopicsLabel, v.TopicCount)
	fmt.Fprintf(&b, "- %s: %s\n\n", v.YearsLabel, v.YearRange)
	fmt.Fprintf(&b, "## %s\n", v.PatternsHeading)
	if v.CallToAction != "" {
		b.WriteString(v.CallToAction + "\n")
		return b.String()
	}
	for _, p := range v.Patterns {
		fmt.Fprintf(&b, "- %s (%s)\n", p.Topic, p.Line(t))
	}
	return b.String()
}

func formatGraph(v view.GraphView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", v.Title)
	if v.Empty {
		fmt.Fprintf(&b, "%s\n%s\n", v.Placeholder, v.Hint)
		return b.String()
	}
	for _, tr := range v.Triples {
		fmt.Fprintf(&b, "- %s\n", tr)
	}
	fmt.Fprintf(&b, "\n%s\n", v.StatsLine())
	return b.String()
}

func formatGovernance(v view.GovernanceView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", v.Title)
	for _, c := range v.Cards {
		fmt.Fprintf(&b, "- %s: %d\n", c.Label, c.Value)
	}
	fmt.Fprintf(&b, "\n## %s\n", v.PendingHeading)
	if len(v.Pending) == 0 {
		b.WriteString(v.EmptyMessage + "\n")
		return b.String()
	}
	for _, p := range v.Pending {
		fmt.Fprintf(&b, "- %s (id: %s, %s)\n", p.Filename, p.DocumentID, p.Uploaded)
	}
	return b.String()
}

func formatHealth(v view.HealthView) string {
	s := fmt.Sprintf("status: %s", v.Label)
	if v.Ollama != "" {
		s += "\nollama: " + v.Ollama
	}
	if v.Chroma != "" {
		s += "\nchroma: " + v.Chroma
	}
	return s
}
