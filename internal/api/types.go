package api

import (
	"encoding/json"
	"strings"
	"time"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status       string `json:"status"`
	OllamaStatus string `json:"ollama_status,omitempty"`
	ChromaStatus string `json:"chroma_status,omitempty"`
}

// Healthy reports whether the backend considers itself fully operational.
func (h HealthResponse) Healthy() bool { return h.Status == "healthy" }

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Query          string `json:"query"`
	Language       string `json:"language"`
	TopK           int    `json:"top_k"`
	IncludeSources bool   `json:"include_sources"`
}

// Source is one retrieved passage backing an answer.
type Source struct {
	Filename       string  `json:"filename"`
	Page           *int    `json:"page,omitempty"`
	ChunkText      string  `json:"chunk_text"`
	RelevanceScore float64 `json:"relevance_score"`
}

// ChatResponse is the body returned by POST /chat.
type ChatResponse struct {
	Answer          string   `json:"answer"`
	Sources         []Source `json:"sources"`
	ConfidenceScore float64  `json:"confidence_score"`
	Language        string   `json:"language"`
	ProcessingTime  float64  `json:"processing_time"`
}

// DocumentMetadata describes an indexed upload.
type DocumentMetadata struct {
	Filename    string `json:"filename"`
	FileType    string `json:"file_type"`
	TotalPages  *int   `json:"total_pages,omitempty"`
	TotalChunks int    `json:"total_chunks"`
}

// UploadResponse is the body returned by POST /upload.
type UploadResponse struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	DocumentID string            `json:"document_id"`
	Metadata   *DocumentMetadata `json:"metadata,omitempty"`
}

// Pattern is a recurring topic detected in previous-year questions.
type Pattern struct {
	Topic           string  `json:"topic"`
	Frequency       int     `json:"frequency"`
	Years           []int   `json:"years,omitempty"`
	Difficulty      string  `json:"difficulty,omitempty"`
	ImportanceScore float64 `json:"importance_score"`
}

// AnalyticsResponse is the body of GET /analytics/pyq.
type AnalyticsResponse struct {
	TotalQuestions         int                        `json:"total_questions"`
	TopicDistribution      map[string]int             `json:"topic_distribution"`
	DifficultyDistribution map[string]int             `json:"difficulty_distribution,omitempty"`
	YearWiseTrends         map[string]json.RawMessage `json:"year_wise_trends"`
	Patterns               []Pattern                  `json:"patterns"`
}

// GraphNode is a knowledge-graph vertex. Only its presence matters to the
// client, so properties are kept opaque.
type GraphNode struct {
	ID         string                     `json:"id"`
	Label      string                     `json:"label"`
	Type       string                     `json:"type"`
	Properties map[string]json.RawMessage `json:"properties,omitempty"`
}

// GraphEdge is a directed relationship between two nodes.
type GraphEdge struct {
	Source       string  `json:"source"`
	Target       string  `json:"target"`
	Relationship string  `json:"relationship"`
	Weight       float64 `json:"weight,omitempty"`
}

// GraphStatistics holds the aggregate numbers of the knowledge graph.
type GraphStatistics struct {
	TotalNodes int     `json:"total_nodes"`
	TotalEdges int     `json:"total_edges"`
	Density    float64 `json:"density"`
}

// GraphResponse is the body of GET /knowledge-graph.
type GraphResponse struct {
	Nodes      []GraphNode     `json:"nodes"`
	Edges      []GraphEdge     `json:"edges"`
	Statistics GraphStatistics `json:"statistics"`
}

// GovernanceStats is the body of GET /governance/stats.
type GovernanceStats struct {
	TotalDocuments    int `json:"total_documents"`
	PendingApproval   int `json:"pending_approval"`
	ApprovedDocuments int `json:"approved_documents"`
	RejectedDocuments int `json:"rejected_documents"`
	TotalQueries      int `json:"total_queries"`
}

// PendingDocument is an upload awaiting review.
type PendingDocument struct {
	DocumentID string    `json:"document_id"`
	Filename   string    `json:"filename"`
	UploadDate Timestamp `json:"upload_date"`
}

// PendingResponse is the body of GET /governance/pending.
type PendingResponse struct {
	Documents []PendingDocument `json:"documents"`
}

// Approval actions accepted by POST /governance/approve.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// ApprovalRequest is the body of POST /governance/approve.
type ApprovalRequest struct {
	DocumentID string `json:"document_id"`
	Action     string `json:"action"`
	Reason     string `json:"reason,omitempty"`
}

// Timestamp accepts the ISO-8601 variants the backend emits, with or without
// a zone offset and fractional seconds.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			ts.Time = t
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// MarshalJSON implements json.Marshaler.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Format(time.RFC3339))
}
