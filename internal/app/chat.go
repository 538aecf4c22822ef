package app

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/campusnexus/nexus/internal/api"
	"github.com/campusnexus/nexus/internal/i18n"
	"github.com/campusnexus/nexus/internal/view"
)

// SendMessage posts input as a question and renders the answer. It reports
// whether a request was made; blank input is ignored.
func (c *Coordinator) SendMessage(ctx context.Context, input string) bool {
	query := strings.TrimSpace(input)
	if query == "" {
		return false
	}

	c.mu.Lock()
	lang := c.state.Language
	firstSend := c.welcome
	c.welcome = false
	c.mu.Unlock()

	t := i18n.Lookup(lang)
	c.surface.ClearInput()
	if firstSend {
		c.surface.RemoveWelcome()
	}

	c.appendMessage(view.UserMessage(query))
	placeholder := view.ThinkingPlaceholder(t)
	c.appendMessage(placeholder)

	resp, err := c.backend.Chat(ctx, api.ChatRequest{
		Query:          query,
		Language:       lang,
		TopK:           c.opts.TopK,
		IncludeSources: true,
	})
	c.removeMessage(placeholder.ID)

	if err != nil {
		c.logger.Error("chat request failed", zap.Error(err))
		c.appendMessage(view.FallbackMessage(t))
		return true
	}

	c.appendMessage(view.AssistantMessage(resp))
	return true
}

func (c *Coordinator) appendMessage(m view.ChatMessage) {
	c.mu.Lock()
	c.messages = append(c.messages, m)
	c.mu.Unlock()

	c.surface.AppendMessage(m)
	c.surface.ScrollToLatest()
}

func (c *Coordinator) removeMessage(id string) {
	c.mu.Lock()
	for i, m := range c.messages {
		if m.ID == id {
			c.messages = append(c.messages[:i], c.messages[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	c.surface.RemoveMessage(id)
}
