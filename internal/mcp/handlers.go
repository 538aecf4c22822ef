package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/campusnexus/nexus/internal/api"
	"github.com/campusnexus/nexus/internal/i18n"
	"github.com/campusnexus/nexus/internal/view"
)

func (s *Server) table(request mcp.CallToolRequest) (string, i18n.Table) {
	lang := request.GetString("language", s.opts.Language)
	if !i18n.IsSupported(lang) {
		lang = i18n.DefaultLanguage
	}
	return lang, i18n.Lookup(lang)
}

// toolError turns a backend failure into a tool result, preferring the
// backend's own detail message.
func (s *Server) toolError(what string, err error) *mcp.CallToolResult {
	s.logger.Error(what, zap.Error(err))
	if detail := api.Detail(err); detail != "" {
		return mcp.NewToolResultError(fmt.Sprintf("%s: %s", what, detail))
	}
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", what, err))
}

// handleAskDocuments forwards a question to the chat endpoint.
func (s *Server) handleAskDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil || strings.TrimSpace(question) == "" {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}

	topK := request.GetInt("top_k", s.opts.TopK)
	if topK <= 0 {
		topK = s.opts.TopK
	}
	lang, t := s.table(request)

	resp, err := s.backend.Chat(ctx, api.ChatRequest{
		Query:          strings.TrimSpace(question),
		Language:       lang,
		TopK:           topK,
		IncludeSources: true,
	})
	if err != nil {
		return s.toolError("chat request failed", err), nil
	}

	return mcp.NewToolResultText(formatAnswer(view.AssistantMessage(resp), t)), nil
}

// handleUploadDocument streams a local file to the upload endpoint.
func (s *Server) handleUploadDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot open %q: %v", path, err)), nil
	}
	defer f.Close()

	resp, err := s.backend.Upload(ctx, filepath.Base(path), f)
	if err != nil {
		return s.toolError("upload failed", err), nil
	}

	item := view.UploadItem{Name: filepath.Base(path)}
	item.Succeed(resp, i18n.Lookup(s.opts.Language))
	text := fmt.Sprintf("%s: %s", item.Name, item.StatusText)
	if resp.DocumentID != "" {
		text += fmt.Sprintf("\ndocument_id: %s", resp.DocumentID)
	}
	return mcp.NewToolResultText(text), nil
}

// handleGetAnalytics summarizes previous-year-question analytics.
func (s *Server) handleGetAnalytics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := s.backend.Analytics(ctx)
	if err != nil {
		return s.toolError("loading analytics", err), nil
	}
	_, t := s.table(request)
	return mcp.NewToolResultText(formatAnalytics(view.BuildAnalytics(resp, t), t)), nil
}

// handleGetKnowledgeGraph lists the concept graph edges.
func (s *Server) handleGetKnowledgeGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := s.backend.KnowledgeGraph(ctx)
	if err != nil {
		return s.toolError("loading knowledge graph", err), nil
	}
	_, t := s.table(request)
	return mcp.NewToolResultText(formatGraph(view.BuildGraph(resp, t))), nil
}

// handleGetGovernance reports governance stats and the pending queue.
func (s *Server) handleGetGovernance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.backend.GovernanceStats(ctx)
	if err != nil {
		return s.toolError("loading governance stats", err), nil
	}
	pending, err := s.backend.PendingDocuments(ctx)
	if err != nil {
		return s.toolError("loading pending documents", err), nil
	}
	_, t := s.table(request)
	return mcp.NewToolResultText(formatGovernance(view.BuildGovernance(stats, pending, t, s.opts.Location))), nil
}

// handleReviewDocument approves or rejects a pending document.
func (s *Server) handleReviewDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("document_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: document_id"), nil
	}
	action, err := request.RequireString("action")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: action"), nil
	}

	req := api.ApprovalRequest{DocumentID: id, Action: action}
	switch action {
	case api.ActionApprove:
	case api.ActionReject:
		req.Reason = strings.TrimSpace(request.GetString("reason", ""))
		if req.Reason == "" {
			req.Reason = i18n.Lookup(s.opts.Language).T("rejectDefault")
		}
	default:
		return mcp.NewToolResultError(fmt.Sprintf("action must be %q or %q", api.ActionApprove, api.ActionReject)), nil
	}

	if err := s.backend.Review(ctx, req); err != nil {
		return s.toolError(action+" failed", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Document %s: %sd", id, action)), nil
}

// handleGetHealth probes the backend once.
func (s *Server) handleGetHealth(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	resp, err := s.backend.Health(ctx)
	state := view.ClassifyHealth(resp, err)
	if err != nil {
		resp = nil
	}
	return mcp.NewToolResultText(formatHealth(view.BuildHealth(state, resp, i18n.Lookup(s.opts.Language)))), nil
}
