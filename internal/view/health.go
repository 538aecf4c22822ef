package view

import (
	"github.com/campusnexus/nexus/internal/api"
	"github.com/campusnexus/nexus/internal/i18n"
)

// HealthState is the connectivity indicator state.
type HealthState string

const (
	HealthChecking  HealthState = "checking"
	HealthConnected HealthState = "connected"
	HealthDegraded  HealthState = "degraded"
	HealthOffline   HealthState = "offline"
)

// HealthView is the rendered status indicator.
type HealthView struct {
	State  HealthState `json:"state"`
	Label  string      `json:"label"`
	Dot    string      `json:"dot"`
	Tint   string      `json:"tint"`
	Border string      `json:"border"`
	Ollama string      `json:"ollama,omitempty"`
	Chroma string      `json:"chroma,omitempty"`
}

type healthStyle struct {
	labelKey string
	dot      string
	tint     string
	border   string
}

var healthStyles = map[HealthState]healthStyle{
	HealthChecking:  {"checkingStatus", "muted", "transparent", "transparent"},
	HealthConnected: {"statusConnected", "success", "rgba(16, 185, 129, 0.1)", "rgba(16, 185, 129, 0.3)"},
	HealthDegraded:  {"statusDegraded", "warning", "rgba(245, 158, 11, 0.1)", "rgba(245, 158, 11, 0.3)"},
	HealthOffline:   {"statusOffline", "danger", "rgba(239, 68, 68, 0.1)", "rgba(239, 68, 68, 0.3)"},
}

// ClassifyHealth maps a probe outcome to an indicator state. Any error,
// including an unreadable body, means offline.
func ClassifyHealth(resp *api.HealthResponse, err error) HealthState {
	switch {
	case err != nil || resp == nil:
		return HealthOffline
	case resp.Healthy():
		return HealthConnected
	default:
		return HealthDegraded
	}
}

// BuildHealth renders the indicator for state in the given language.
func BuildHealth(state HealthState, resp *api.HealthResponse, t i18n.Table) HealthView {
	style, ok := healthStyles[state]
	if !ok {
		style = healthStyles[HealthOffline]
		state = HealthOffline
	}
	v := HealthView{
		State:  state,
		Label:  t.T(style.labelKey),
		Dot:    style.dot,
		Tint:   style.tint,
		Border: style.border,
	}
	if resp != nil {
		v.Ollama = resp.OllamaStatus
		v.Chroma = resp.ChromaStatus
	}
	return v
}
