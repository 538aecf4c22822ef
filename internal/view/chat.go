// Package view turns backend responses into render-ready view-models.
// Nothing in here touches a terminal, a browser or the network.
package view

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/campusnexus/nexus/internal/api"
	"github.com/campusnexus/nexus/internal/i18n"
)

// Role identifies who authored a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// SourceView is one numbered citation under an answer.
type SourceView struct {
	Index    int    `json:"index"`
	Filename string `json:"filename"`
	Page     *int   `json:"page,omitempty"`
	Excerpt  string `json:"excerpt"`
}

// Heading renders "1. notes.pdf (Page 3)" in the given language.
func (s SourceView) Heading(t i18n.Table) string {
	if s.Page != nil {
		return fmt.Sprintf("%d. %s (%s %d)", s.Index, s.Filename, t.T("page"), *s.Page)
	}
	return fmt.Sprintf("%d. %s", s.Index, s.Filename)
}

// ChatMessage is one entry in the conversation.
type ChatMessage struct {
	ID          string       `json:"id"`
	Role        Role         `json:"role"`
	Text        string       `json:"text"`
	Sources     []SourceView `json:"sources,omitempty"`
	Confidence  *int         `json:"confidence,omitempty"`
	LatencySecs *float64     `json:"latency_secs,omitempty"`
	Placeholder bool         `json:"placeholder,omitempty"`
	Fallback    bool         `json:"fallback,omitempty"`
}

// ConfidencePercent converts a 0–1 score into a whole percentage.
func ConfidencePercent(score float64) int {
	return int(math.Round(score * 100))
}

// UserMessage builds the view of a question the user sent.
func UserMessage(text string) ChatMessage {
	return ChatMessage{ID: uuid.NewString(), Role: RoleUser, Text: text}
}

// ThinkingPlaceholder builds the temporary message shown while waiting.
func ThinkingPlaceholder(t i18n.Table) ChatMessage {
	return ChatMessage{
		ID:          "typing-" + uuid.NewString(),
		Role:        RoleAssistant,
		Text:        t.T("thinking"),
		Placeholder: true,
	}
}

// AssistantMessage builds the view of a backend answer.
func AssistantMessage(resp *api.ChatResponse) ChatMessage {
	confidence := ConfidencePercent(resp.ConfidenceScore)
	latency := resp.ProcessingTime

	msg := ChatMessage{
		ID:          uuid.NewString(),
		Role:        RoleAssistant,
		Text:        resp.Answer,
		Confidence:  &confidence,
		LatencySecs: &latency,
	}
	for i, src := range resp.Sources {
		msg.Sources = append(msg.Sources, SourceView{
			Index:    i + 1,
			Filename: src.Filename,
			Page:     positivePage(src.Page),
			Excerpt:  strings.TrimSpace(src.ChunkText),
		})
	}
	return msg
}

// FallbackMessage is the static apology shown when a question fails.
func FallbackMessage(t i18n.Table) ChatMessage {
	return ChatMessage{
		ID:       uuid.NewString(),
		Role:     RoleAssistant,
		Text:     t.T("chatError"),
		Fallback: true,
	}
}

// ConfidenceLine renders "Confidence: 87%".
func (m ChatMessage) ConfidenceLine(t i18n.Table) string {
	if m.Confidence == nil {
		return ""
	}
	return fmt.Sprintf("%s: %d%%", t.T("confidence"), *m.Confidence)
}

// A page of 0 means "unknown" to the backend, same as a missing page.
func positivePage(p *int) *int {
	if p == nil || *p <= 0 {
		return nil
	}
	v := *p
	return &v
}
