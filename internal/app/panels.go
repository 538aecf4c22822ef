package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/campusnexus/nexus/internal/api"
	"github.com/campusnexus/nexus/internal/view"
)

// LoadAnalytics fetches and renders the PYQ analytics panel.
func (c *Coordinator) LoadAnalytics(ctx context.Context) (view.AnalyticsView, error) {
	resp, err := c.backend.Analytics(ctx)
	if err != nil {
		c.logger.Error("loading analytics", zap.Error(err))
		return view.AnalyticsView{}, fmt.Errorf("loading analytics: %w", err)
	}
	v := view.BuildAnalytics(resp, c.Table())
	c.surface.RenderAnalytics(v)
	return v, nil
}

// LoadGraph fetches and renders the knowledge-graph panel.
func (c *Coordinator) LoadGraph(ctx context.Context) (view.GraphView, error) {
	resp, err := c.backend.KnowledgeGraph(ctx)
	if err != nil {
		c.logger.Error("loading knowledge graph", zap.Error(err))
		return view.GraphView{}, fmt.Errorf("loading knowledge graph: %w", err)
	}
	v := view.BuildGraph(resp, c.Table())
	c.surface.RenderGraph(v)
	return v, nil
}

// LoadGovernance fetches stats, then the pending queue, and renders both.
// When only the queue fails the stat cards are rendered on their own and
// the previous queue stays in place.
func (c *Coordinator) LoadGovernance(ctx context.Context) (view.GovernanceView, error) {
	stats, err := c.backend.GovernanceStats(ctx)
	if err != nil {
		c.logger.Error("loading governance stats", zap.Error(err))
		return view.GovernanceView{}, fmt.Errorf("loading governance stats: %w", err)
	}
	pending, err := c.backend.PendingDocuments(ctx)
	if err != nil {
		c.logger.Error("loading pending documents", zap.Error(err))
		v := view.BuildGovernanceStats(stats, c.Table())
		c.surface.RenderGovernance(v)
		return v, fmt.Errorf("loading pending documents: %w", err)
	}

	v := view.BuildGovernance(stats, pending, c.Table(), c.opts.Location)
	c.surface.RenderGovernance(v)
	return v, nil
}

// Approve approves a pending document and reloads the governance panel.
func (c *Coordinator) Approve(ctx context.Context, documentID string) error {
	return c.review(ctx, api.ApprovalRequest{DocumentID: documentID, Action: api.ActionApprove})
}

// Reject asks for a reason and rejects a pending document. A blank or
// dismissed prompt uses the default reason.
func (c *Coordinator) Reject(ctx context.Context, documentID string) error {
	return c.RejectWithReason(ctx, documentID, c.askReason(ctx))
}

// RejectWithReason rejects without prompting. A blank reason uses the default.
func (c *Coordinator) RejectWithReason(ctx context.Context, documentID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = c.Table().T("rejectDefault")
	}
	return c.review(ctx, api.ApprovalRequest{DocumentID: documentID, Action: api.ActionReject, Reason: reason})
}

func (c *Coordinator) askReason(ctx context.Context) string {
	if c.prompter == nil {
		return ""
	}
	reason, ok, err := c.prompter.Prompt(ctx, c.Table().T("rejectPrompt"))
	if err != nil {
		c.logger.Warn("reading rejection reason", zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return reason
}

func (c *Coordinator) review(ctx context.Context, req api.ApprovalRequest) error {
	if err := c.backend.Review(ctx, req); err != nil {
		c.logger.Error("governance review failed",
			zap.String("document_id", req.DocumentID),
			zap.String("action", req.Action),
			zap.Error(err))
		return fmt.Errorf("%s %s: %w", req.Action, req.DocumentID, err)
	}
	c.logger.Info("governance review", zap.String("document_id", req.DocumentID), zap.String("action", req.Action))

	_, _ = c.LoadGovernance(ctx)
	return nil
}
