package view

import (
	"fmt"

	"github.com/campusnexus/nexus/internal/api"
	"github.com/campusnexus/nexus/internal/i18n"
)

// Triple is one edge rendered as source → relationship → target.
type Triple struct {
	Source       string `json:"source"`
	Relationship string `json:"relationship"`
	Target       string `json:"target"`
}

func (tr Triple) String() string {
	return fmt.Sprintf("%s → %s → %s", tr.Source, tr.Relationship, tr.Target)
}

// GraphView is the textual knowledge-graph panel. Placeholder and Hint are
// set only for an empty graph.
type GraphView struct {
	Title        string   `json:"title"`
	Empty        bool     `json:"empty"`
	Placeholder  string   `json:"placeholder,omitempty"`
	Hint         string   `json:"hint,omitempty"`
	Triples      []Triple `json:"triples,omitempty"`
	Nodes        int      `json:"nodes"`
	Edges        int      `json:"edges"`
	Density      string   `json:"density"`
	NodesLabel   string   `json:"nodes_label"`
	EdgesLabel   string   `json:"edges_label"`
	DensityLabel string   `json:"density_label"`
}

// BuildGraph derives the graph panel from a backend snapshot.
func BuildGraph(resp *api.GraphResponse, t i18n.Table) GraphView {
	v := GraphView{
		Title:        t.T("graphTitle"),
		NodesLabel:   t.T("nodes"),
		EdgesLabel:   t.T("edges"),
		DensityLabel: t.T("density"),
	}
	if len(resp.Nodes) == 0 {
		v.Empty = true
		v.Placeholder = t.T("graphPlaceholder")
		v.Hint = t.T("graphHint")
		return v
	}

	v.Triples = make([]Triple, 0, len(resp.Edges))
	for _, e := range resp.Edges {
		v.Triples = append(v.Triples, Triple{Source: e.Source, Relationship: e.Relationship, Target: e.Target})
	}
	v.Nodes = resp.Statistics.TotalNodes
	v.Edges = resp.Statistics.TotalEdges
	v.Density = FormatDensity(resp.Statistics.Density)
	return v
}

// StatsLine renders "Nodes: 4 | Edges: 3 | Density: 25.00%".
func (g GraphView) StatsLine() string {
	return fmt.Sprintf("%s: %d | %s: %d | %s: %s", g.NodesLabel, g.Nodes, g.EdgesLabel, g.Edges, g.DensityLabel, g.Density)
}

// FormatDensity renders a 0–1 density as a percentage with two decimals.
func FormatDensity(d float64) string {
	return fmt.Sprintf("%.2f%%", d*100)
}
