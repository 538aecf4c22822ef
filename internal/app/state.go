// Package app coordinates panels, controllers and the shared session state.
package app

import (
	"errors"
	"fmt"
	"strings"
)

// Tab identifies one of the mutually exclusive panels.
type Tab string

const (
	TabChat       Tab = "chat"
	TabUpload     Tab = "upload"
	TabAnalytics  Tab = "analytics"
	TabGraph      Tab = "graph"
	TabGovernance Tab = "governance"
)

// Tabs lists every panel in display order.
var Tabs = []Tab{TabChat, TabUpload, TabAnalytics, TabGraph, TabGovernance}

// ErrUnknownTab is returned when switching to a panel that does not exist.
var ErrUnknownTab = errors.New("unknown tab")

// ParseTab resolves a tab id, case-insensitively.
func ParseTab(s string) (Tab, error) {
	want := Tab(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range Tabs {
		if t == want {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// State is the session state shared by every controller.
type State struct {
	Tab       Tab    `json:"tab"`
	Language  string `json:"language"`
	Connected bool   `json:"connected"`
}

var tabTitleKeys = map[Tab]string{
	TabChat:       "welcomeTitle",
	TabUpload:     "uploadTitle",
	TabAnalytics:  "analyticsTitle",
	TabGraph:      "graphTitle",
	TabGovernance: "governanceTitle",
}

// TitleKey returns the translation key of the panel heading.
func (t Tab) TitleKey() string { return tabTitleKeys[t] }
