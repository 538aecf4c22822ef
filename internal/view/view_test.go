package view

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusnexus/nexus/internal/api"
	"github.com/campusnexus/nexus/internal/i18n"
)

var en = i18n.Lookup("en")

func intPtr(v int) *int { return &v }

func TestAssistantMessage(t *testing.T) {
	resp := &api.ChatResponse{
		Answer:          "Dijkstra finds shortest paths.",
		ConfidenceScore: 0.876,
		ProcessingTime:  2.25,
		Sources: []api.Source{
			{Filename: "algo.pdf", Page: intPtr(12), ChunkText: "  Dijkstra's algorithm ... "},
			{Filename: "notes.docx", ChunkText: "greedy"},
			{Filename: "slides.pptx", Page: intPtr(0), ChunkText: "relaxation"},
		},
	}

	msg := AssistantMessage(resp)
	assert.Equal(t, RoleAssistant, msg.Role)
	assert.Equal(t, resp.Answer, msg.Text)
	require.NotNil(t, msg.Confidence)
	assert.Equal(t, 88, *msg.Confidence)
	assert.Equal(t, "Confidence: 88%", msg.ConfidenceLine(en))

	require.Len(t, msg.Sources, 3)
	assert.Equal(t, "1. algo.pdf (Page 12)", msg.Sources[0].Heading(en))
	assert.Equal(t, "Dijkstra's algorithm ...", msg.Sources[0].Excerpt)
	assert.Equal(t, "2. notes.docx", msg.Sources[1].Heading(en))
	assert.Nil(t, msg.Sources[2].Page)
}

func TestConfidencePercent(t *testing.T) {
	for score, want := range map[float64]int{0: 0, 1: 100, 0.5: 50, 0.124: 12, 0.125: 13, 0.999: 100} {
		assert.Equal(t, want, ConfidencePercent(score), "score %v", score)
	}
}

func TestFallbackAndPlaceholder(t *testing.T) {
	fb := FallbackMessage(en)
	assert.True(t, fb.Fallback)
	assert.Nil(t, fb.Confidence)
	assert.Contains(t, fb.Text, "Sorry")

	ph := ThinkingPlaceholder(i18n.Lookup("fr"))
	assert.True(t, ph.Placeholder)
	assert.True(t, strings.HasPrefix(ph.ID, "typing-"))
}

func TestUploadItemLifecycle(t *testing.T) {
	item := NewUploadItem("pyq-2021.pdf", 1536, en)
	assert.Equal(t, "1.5 KB", item.SizeText)
	assert.Equal(t, UploadUploading, item.Status)

	for i := 0; i < 20; i++ {
		item.Advance(10, 90)
	}
	assert.Equal(t, 90, item.Progress)

	item.Succeed(&api.UploadResponse{Metadata: &api.DocumentMetadata{TotalChunks: 12}}, en)
	assert.Equal(t, 100, item.Progress)
	assert.Equal(t, UploadSuccess, item.Status)
	assert.Contains(t, item.StatusText, "12")
	assert.False(t, item.Advance(10, 90))
}

func TestUploadItemFailure(t *testing.T) {
	item := NewUploadItem("virus.exe", 10, en)
	item.Fail(&api.StatusError{Code: 400, Detail: "Unsupported file type"}, en)
	assert.Equal(t, UploadError, item.Status)
	assert.Equal(t, "Unsupported file type", item.StatusText)

	other := NewUploadItem("a.pdf", 10, en)
	other.Fail(errors.New("connection refused"), en)
	assert.Equal(t, "Upload failed", other.StatusText)
}

func TestFormatFileSize(t *testing.T) {
	cases := map[int64]string{
		0:       "0 Bytes",
		500:     "500 Bytes",
		1024:    "1 KB",
		1536:    "1.5 KB",
		1048576: "1 MB",
		1234567: "1.18 MB",
		5 << 30: "5 GB",
		3 << 40: "3072 GB",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatFileSize(in), "bytes %d", in)
	}
}

func TestBuildAnalytics(t *testing.T) {
	resp := &api.AnalyticsResponse{
		TotalQuestions:    42,
		TopicDistribution: map[string]int{"graphs": 10, "trees": 7, "sorting": 5},
		YearWiseTrends: map[string]json.RawMessage{
			"2019": json.RawMessage(`3`), "2021": json.RawMessage(`8`), "2020": json.RawMessage(`5`),
		},
		Patterns: []api.Pattern{{Topic: "graphs", Frequency: 4, ImportanceScore: 0.8}},
	}

	v := BuildAnalytics(resp, en)
	assert.Equal(t, 42, v.TotalQuestions)
	assert.Equal(t, 3, v.TopicCount)
	assert.Equal(t, "2019-2021", v.YearRange)
	require.Len(t, v.Patterns, 1)
	assert.Equal(t, "Frequency: 4 | Importance: 80%", v.Patterns[0].Line(en))
	assert.Empty(t, v.CallToAction)
}

func TestBuildAnalyticsEmpty(t *testing.T) {
	v := BuildAnalytics(&api.AnalyticsResponse{}, i18n.Lookup("es"))
	assert.Empty(t, v.Patterns)
	assert.Equal(t, "Sube documentos PYQ para ver análisis", v.CallToAction)
	assert.Equal(t, "", v.YearRange)
}

func TestYearRange(t *testing.T) {
	assert.Equal(t, "2019-2021", YearRange([]string{"2019", "2021", "2020"}))
	assert.Equal(t, "2018-2018", YearRange([]string{"2018"}))
	assert.Equal(t, "2015-2020", YearRange([]string{"unknown", "2020", "2015"}))
	assert.Equal(t, "", YearRange(nil))
}

func TestBuildGraph(t *testing.T) {
	resp := &api.GraphResponse{
		Nodes:      []api.GraphNode{{ID: "bfs"}, {ID: "queue"}},
		Edges:      []api.GraphEdge{{Source: "BFS", Relationship: "uses", Target: "Queue"}},
		Statistics: api.GraphStatistics{TotalNodes: 2, TotalEdges: 1, Density: 0.1234},
	}
	v := BuildGraph(resp, en)
	assert.False(t, v.Empty)
	require.Len(t, v.Triples, 1)
	assert.Equal(t, "BFS → uses → Queue", v.Triples[0].String())
	assert.Equal(t, "12.34%", v.Density)
	assert.Equal(t, "Nodes: 2 | Edges: 1 | Density: 12.34%", v.StatsLine())
}

func TestBuildGraphEmpty(t *testing.T) {
	v := BuildGraph(&api.GraphResponse{Edges: []api.GraphEdge{{Source: "a", Target: "b"}}}, en)
	assert.True(t, v.Empty)
	assert.Empty(t, v.Triples)
	assert.Equal(t, "Knowledge graph will appear here", v.Placeholder)
	assert.Equal(t, "Upload documents to generate the graph", v.Hint)
}

func TestFormatDensity(t *testing.T) {
	assert.Equal(t, "12.34%", FormatDensity(0.1234))
	assert.Equal(t, "0.00%", FormatDensity(0))
	assert.Equal(t, "100.00%", FormatDensity(1))
}

func TestBuildGovernanceEmpty(t *testing.T) {
	stats := &api.GovernanceStats{TotalDocuments: 3, ApprovedDocuments: 2, RejectedDocuments: 1, TotalQueries: 9}
	v := BuildGovernance(stats, &api.PendingResponse{}, en, time.UTC)
	assert.Equal(t, "No pending documents", v.EmptyMessage)
	assert.Zero(t, v.ActionCount())
	require.Len(t, v.Cards, 5)
	assert.Equal(t, "Total Documents", v.Cards[0].Label)
	assert.Equal(t, 9, v.Cards[4].Value)
}

func TestBuildGovernanceLocalizedLabels(t *testing.T) {
	var pending api.PendingResponse
	require.NoError(t, json.Unmarshal([]byte(`{"documents":[{"document_id":"d1","filename":"a.pdf","upload_date":"2024-03-05T14:20:30"}]}`), &pending))

	v := BuildGovernance(&api.GovernanceStats{PendingApproval: 1}, &pending, i18n.Lookup("de"), time.UTC)
	assert.Equal(t, "Ausstehend", v.Cards[1].Label)
	require.Len(t, v.Pending, 1)
	assert.Equal(t, 2, v.ActionCount())
	assert.Equal(t, "Genehmigen", v.Pending[0].ApproveLabel)
	assert.Equal(t, "05.03.2024, 14:20:30", v.Pending[0].Uploaded)
	assert.Empty(t, v.EmptyMessage)
}

func TestBuildGovernanceStats(t *testing.T) {
	v := BuildGovernanceStats(&api.GovernanceStats{RejectedDocuments: 2}, en)
	assert.True(t, v.StatsOnly)
	assert.Equal(t, "Rejected", v.Cards[3].Label)
	assert.Equal(t, 2, v.Cards[3].Value)
	assert.Empty(t, v.Pending)
	assert.Empty(t, v.EmptyMessage)

	full := BuildGovernance(&api.GovernanceStats{}, &api.PendingResponse{}, en, time.UTC)
	assert.False(t, full.StatsOnly)
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 20, 30, 0, time.UTC)
	assert.Equal(t, "3/5/2024, 2:20:30 PM", FormatTimestamp(ts, "en", time.UTC))
	assert.Equal(t, "05/03/2024, 14:20:30", FormatTimestamp(ts, "fr", time.UTC))
	assert.Equal(t, "", FormatTimestamp(time.Time{}, "en", time.UTC))
}

func TestClassifyHealth(t *testing.T) {
	assert.Equal(t, HealthConnected, ClassifyHealth(&api.HealthResponse{Status: "healthy"}, nil))
	assert.Equal(t, HealthDegraded, ClassifyHealth(&api.HealthResponse{Status: "degraded"}, nil))
	assert.Equal(t, HealthDegraded, ClassifyHealth(&api.HealthResponse{}, nil))
	assert.Equal(t, HealthOffline, ClassifyHealth(nil, errors.New("dial tcp: refused")))
}

func TestBuildHealth(t *testing.T) {
	v := BuildHealth(HealthDegraded, &api.HealthResponse{Status: "degraded", OllamaStatus: "disconnected"}, en)
	assert.Equal(t, "Degraded", v.Label)
	assert.Equal(t, "warning", v.Dot)
	assert.Equal(t, "rgba(245, 158, 11, 0.1)", v.Tint)
	assert.Equal(t, "disconnected", v.Ollama)

	off := BuildHealth(HealthOffline, nil, i18n.Lookup("es"))
	assert.Equal(t, "Sin conexión", off.Label)
	assert.Equal(t, "danger", off.Dot)
}
