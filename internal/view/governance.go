package view

import (
	"time"

	"github.com/campusnexus/nexus/internal/api"
	"github.com/campusnexus/nexus/internal/i18n"
)

// StatCard is one labelled counter in the governance panel.
type StatCard struct {
	Icon  string `json:"icon"`
	Value int    `json:"value"`
	Label string `json:"label"`
}

// PendingItem is one document awaiting review.
type PendingItem struct {
	DocumentID   string `json:"document_id"`
	Filename     string `json:"filename"`
	Uploaded     string `json:"uploaded"`
	ApproveLabel string `json:"approve_label"`
	RejectLabel  string `json:"reject_label"`
}

// GovernanceView is the document-approval panel.
type GovernanceView struct {
	Title          string        `json:"title"`
	Cards          []StatCard    `json:"cards"`
	PendingHeading string        `json:"pending_heading"`
	Pending        []PendingItem `json:"pending"`
	EmptyMessage   string        `json:"empty_message,omitempty"`
	// StatsOnly marks a render without a fresh pending list. Surfaces keep
	// whatever pending list they already show.
	StatsOnly bool `json:"stats_only,omitempty"`
}

// ActionCount is the number of approve/reject controls the panel shows.
func (g GovernanceView) ActionCount() int { return 2 * len(g.Pending) }

// BuildGovernance derives the governance panel from the two snapshots. The
// timestamps are rendered in loc.
func BuildGovernance(stats *api.GovernanceStats, pending *api.PendingResponse, t i18n.Table, loc *time.Location) GovernanceView {
	v := BuildGovernanceStats(stats, t)
	v.StatsOnly = false

	if pending == nil || len(pending.Documents) == 0 {
		v.EmptyMessage = t.T("noPending")
		return v
	}
	for _, d := range pending.Documents {
		v.Pending = append(v.Pending, PendingItem{
			DocumentID:   d.DocumentID,
			Filename:     d.Filename,
			Uploaded:     FormatTimestamp(d.UploadDate.Time, t.Code(), loc),
			ApproveLabel: t.T("approve"),
			RejectLabel:  t.T("reject"),
		})
	}
	return v
}

// BuildGovernanceStats renders the stat cards alone, for when the pending
// list could not be fetched.
func BuildGovernanceStats(stats *api.GovernanceStats, t i18n.Table) GovernanceView {
	return GovernanceView{
		Title:          t.T("governanceTitle"),
		PendingHeading: t.T("pendingApprovals"),
		Cards: []StatCard{
			{Icon: "📄", Value: stats.TotalDocuments, Label: t.T("totalDocs")},
			{Icon: "⏳", Value: stats.PendingApproval, Label: t.T("pending")},
			{Icon: "✅", Value: stats.ApprovedDocuments, Label: t.T("approved")},
			{Icon: "❌", Value: stats.RejectedDocuments, Label: t.T("rejected")},
			{Icon: "💬", Value: stats.TotalQueries, Label: t.T("totalQueries")},
		},
		StatsOnly: true,
	}
}

var timestampLayouts = map[string]string{
	"en": "1/2/2006, 3:04:05 PM",
	"de": "02.01.2006, 15:04:05",
	"hi": "2/1/2006, 3:04:05 PM",
	"mr": "2/1/2006, 3:04:05 PM",
}

const defaultTimestampLayout = "02/01/2006, 15:04:05"

// FormatTimestamp renders t in the conventional short form of lang.
func FormatTimestamp(t time.Time, lang string, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	layout, ok := timestampLayouts[lang]
	if !ok {
		layout = defaultTimestampLayout
	}
	return t.Format(layout)
}
