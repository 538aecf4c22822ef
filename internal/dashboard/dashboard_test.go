package dashboard

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusnexus/nexus/internal/api"
	"github.com/campusnexus/nexus/internal/app"
	"github.com/campusnexus/nexus/internal/view"
)

// fakeBackend stands in for the CampusNexus API.
type fakeBackend struct {
	mu      sync.Mutex
	reviews []api.ApprovalRequest
	uploads []string
}

func (f *fakeBackend) routes(t *testing.T) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"healthy","ollama_status":"connected","chroma_status":"connected"}`))
	})
	r.Post("/chat", func(w http.ResponseWriter, r *http.Request) {
		var req api.ChatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if strings.HasPrefix(req.Query, "slow") {
			time.Sleep(200 * time.Millisecond)
		}
		answer := "**BFS** uses a queue"
		if strings.HasPrefix(req.Query, "slow") || strings.HasPrefix(req.Query, "fast") {
			answer = "re " + req.Query
		}
		json.NewEncoder(w).Encode(api.ChatResponse{
			Answer:          answer,
			ConfidenceScore: 0.9,
			Sources:         []api.Source{{Filename: "algo.pdf", ChunkText: "queue"}},
		})
	})
	r.Post("/upload", func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		f.mu.Lock()
		f.uploads = append(f.uploads, header.Filename)
		f.mu.Unlock()
		w.Write([]byte(`{"success":true,"message":"ok","document_id":"d1","metadata":{"filename":"` + header.Filename + `","file_type":"pdf","total_chunks":12}}`))
	})
	r.Get("/governance/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total_documents":1,"pending_approval":1,"approved_documents":0,"rejected_documents":0,"total_queries":3}`))
	})
	r.Get("/governance/pending", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"documents":[{"document_id":"doc-1","filename":"unit1.pdf","upload_date":"2024-03-05T14:20:30"}]}`))
	})
	r.Post("/governance/approve", func(w http.ResponseWriter, r *http.Request) {
		var req api.ApprovalRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		f.mu.Lock()
		f.reviews = append(f.reviews, req)
		f.mu.Unlock()
		w.Write([]byte(`{"success":true}`))
	})
	return r
}

func (f *fakeBackend) snapshotReviews() []api.ApprovalRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]api.ApprovalRequest(nil), f.reviews...)
}

type rawEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func setupTest(t *testing.T) (*httptest.Server, *Dashboard, *fakeBackend) {
	t.Helper()
	fb := &fakeBackend{}
	backendSrv := httptest.NewServer(fb.routes(t))
	t.Cleanup(backendSrv.Close)

	d := New(api.NewClient(backendSrv.URL), Options{
		Session:        app.Options{Language: "en", NotifyDuration: time.Hour, Location: time.UTC},
		HealthInterval: time.Hour,
	}, nil)
	t.Cleanup(d.Close)

	r := chi.NewRouter()
	d.RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, d, fb
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { conn.Close() })
	return conn
}

// readUntil reads events until one of type typ satisfies match.
func readUntil(t *testing.T, conn *websocket.Conn, typ string, match func(json.RawMessage) bool) json.RawMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	for {
		var ev rawEvent
		require.NoError(t, conn.ReadJSON(&ev), "waiting for %s", typ)
		if ev.Type == typ && (match == nil || match(ev.Data)) {
			return ev.Data
		}
	}
}

func hello(t *testing.T, conn *websocket.Conn, id string) sessionEvent {
	t.Helper()
	require.NoError(t, conn.WriteJSON(clientMessage{Type: "hello", SessionID: id}))
	var s sessionEvent
	require.NoError(t, json.Unmarshal(readUntil(t, conn, "session", nil), &s))
	return s
}

func TestServeIndex(t *testing.T) {
	srv, _, _ := setupTest(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	assert.Contains(t, buf.String(), `data-i18n="welcomeTitle"`)
}

func TestLanguagesEndpoint(t *testing.T) {
	srv, _, _ := setupTest(t)

	resp, err := http.Get(srv.URL + "/api/languages")
	require.NoError(t, err)
	defer resp.Body.Close()

	var langs []language
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&langs))
	require.Len(t, langs, 6)
	assert.Equal(t, "en", langs[0].Code)
}

func TestWebSocketChat(t *testing.T) {
	srv, _, _ := setupTest(t)
	conn := dial(t, srv)

	s := hello(t, conn, "")
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, app.TabChat, s.State.Tab)

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "send", Text: "What does BFS use?"}))

	data := readUntil(t, conn, "message", func(raw json.RawMessage) bool {
		var m messageEvent
		return json.Unmarshal(raw, &m) == nil && m.Role == view.RoleAssistant && !m.Placeholder
	})
	var m messageEvent
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Contains(t, m.HTML, "<strong>BFS</strong> uses a queue")
	require.NotNil(t, m.Confidence)
	assert.Equal(t, 90, *m.Confidence)
	require.Len(t, m.Sources, 1)
}

func TestWebSocketHealthOnAttach(t *testing.T) {
	srv, _, _ := setupTest(t)
	conn := dial(t, srv)
	hello(t, conn, "")

	data := readUntil(t, conn, "health", func(raw json.RawMessage) bool {
		var h view.HealthView
		return json.Unmarshal(raw, &h) == nil && h.State != view.HealthChecking
	})
	var h view.HealthView
	require.NoError(t, json.Unmarshal(data, &h))
	assert.Equal(t, view.HealthConnected, h.State)
	assert.Equal(t, "success", h.Dot)
}

func TestWebSocketUnknownTab(t *testing.T) {
	srv, _, _ := setupTest(t)
	conn := dial(t, srv)
	hello(t, conn, "")

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "tab", Tab: "settings"}))
	data := readUntil(t, conn, "error", nil)
	assert.Contains(t, string(data), "unknown tab")
}

func TestWebSocketRejectPrompt(t *testing.T) {
	srv, _, fb := setupTest(t)
	conn := dial(t, srv)
	hello(t, conn, "")

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "tab", Tab: "governance"}))
	readUntil(t, conn, "governance", nil)

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "reject", DocumentID: "doc-1"}))
	var p promptEvent
	require.NoError(t, json.Unmarshal(readUntil(t, conn, "prompt", nil), &p))
	assert.Equal(t, "Reason for rejection", p.Label)

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "prompt_reply", PromptID: p.ID, Value: "duplicate", OK: true}))
	readUntil(t, conn, "governance", nil)

	assert.Equal(t, []api.ApprovalRequest{{DocumentID: "doc-1", Action: api.ActionReject, Reason: "duplicate"}}, fb.snapshotReviews())
}

func TestWebSocketRejectCancelled(t *testing.T) {
	srv, _, fb := setupTest(t)
	conn := dial(t, srv)
	hello(t, conn, "")

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "reject", DocumentID: "doc-1"}))
	var p promptEvent
	require.NoError(t, json.Unmarshal(readUntil(t, conn, "prompt", nil), &p))
	require.NoError(t, conn.WriteJSON(clientMessage{Type: "prompt_reply", PromptID: p.ID, OK: false}))

	require.Eventually(t, func() bool { return len(fb.snapshotReviews()) == 1 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, "Not suitable", fb.snapshotReviews()[0].Reason)
}

func TestUploadRelay(t *testing.T) {
	srv, _, fb := setupTest(t)
	conn := dial(t, srv)
	s := hello(t, conn, "")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "pyq-2021.pdf")
	require.NoError(t, err)
	part.Write([]byte("%PDF-1.4 test"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/sessions/"+s.ID+"/upload", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []view.UploadItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, view.UploadSuccess, items[0].Status)
	assert.Contains(t, items[0].StatusText, "12")
	fb.mu.Lock()
	assert.Equal(t, []string{"pyq-2021.pdf"}, fb.uploads)
	fb.mu.Unlock()

	readUntil(t, conn, "upload", func(raw json.RawMessage) bool {
		var u view.UploadItem
		return json.Unmarshal(raw, &u) == nil && u.Status == view.UploadSuccess
	})
}

func TestUploadUnknownSession(t *testing.T) {
	srv, _, _ := setupTest(t)

	resp, err := http.Post(srv.URL+"/api/sessions/nope/upload", "multipart/form-data; boundary=x", strings.NewReader(""))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSessionResume(t *testing.T) {
	srv, _, _ := setupTest(t)

	first := dial(t, srv)
	s := hello(t, first, "")
	require.NoError(t, first.WriteJSON(clientMessage{Type: "lang", Language: "fr"}))
	readUntil(t, first, "translations", func(raw json.RawMessage) bool {
		return strings.Contains(string(raw), `"language":"fr"`)
	})
	first.Close()

	second := dial(t, srv)
	resumed := hello(t, second, s.ID)
	assert.Equal(t, s.ID, resumed.ID)
	assert.Equal(t, "fr", resumed.State.Language)

	resp, err := http.Get(srv.URL + "/api/sessions/" + s.ID)
	require.NoError(t, err)
	defer resp.Body.Close()
	var st sessionStateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, "fr", st.State.Language)
}

func TestPrompterWithoutConnection(t *testing.T) {
	p := newPrompter(&wsSurface{})
	v, ok, err := p.Prompt(t.Context(), "Reason")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.False(t, p.resolve("missing", "x", true))
}

func TestRenderMarkdown(t *testing.T) {
	md := newMarkdown()
	assert.Equal(t, "<p><em>queue</em> first<br>\nthen stack</p>\n", renderMarkdown(md, "*queue* first\nthen stack"))
	assert.NotContains(t, renderMarkdown(md, "<script>alert(1)</script>"), "<script>")

	code := renderMarkdown(md, "```go\nfunc main() {}\n```")
	assert.Contains(t, code, "<pre")
	assert.Contains(t, code, "style=")
	assert.Contains(t, code, "main")
}

func transcript(t *testing.T, srv *httptest.Server, id string) []view.ChatMessage {
	t.Helper()
	resp, err := http.Get(srv.URL + "/api/sessions/" + id)
	require.NoError(t, err)
	defer resp.Body.Close()
	var st sessionStateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	return st.Messages
}

func texts(msgs []view.ChatMessage) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if !m.Placeholder {
			out = append(out, m.Text)
		}
	}
	return out
}

func TestWebSocketMessagesRunInArrivalOrder(t *testing.T) {
	srv, _, _ := setupTest(t)
	conn := dial(t, srv)
	s := hello(t, conn, "")

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "send", Text: "slow question"}))
	require.NoError(t, conn.WriteJSON(clientMessage{Type: "send", Text: "fast question"}))

	want := []string{"slow question", "re slow question", "fast question", "re fast question"}
	require.Eventually(t, func() bool {
		return len(texts(transcript(t, srv, s.ID))) == len(want)
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, want, texts(transcript(t, srv, s.ID)))
}

func TestWebSocketCloseKeepsInFlightChat(t *testing.T) {
	srv, _, _ := setupTest(t)
	conn := dial(t, srv)
	s := hello(t, conn, "")

	require.NoError(t, conn.WriteJSON(clientMessage{Type: "send", Text: "slow after reload"}))
	readUntil(t, conn, "message", nil)
	conn.Close()

	require.Eventually(t, func() bool {
		return len(texts(transcript(t, srv, s.ID))) == 2
	}, 5*time.Second, 20*time.Millisecond)
	msgs := transcript(t, srv, s.ID)
	last := msgs[len(msgs)-1]
	assert.False(t, last.Fallback)
	assert.Equal(t, "re slow after reload", last.Text)
}
