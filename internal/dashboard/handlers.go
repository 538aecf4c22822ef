package dashboard

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/campusnexus/nexus/internal/app"
	"github.com/campusnexus/nexus/internal/i18n"
	"github.com/campusnexus/nexus/internal/view"
)

// maxUploadMemory is the multipart size kept in memory; larger parts spill
// to temporary files.
const maxUploadMemory = 32 << 20

type language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (d *Dashboard) handleLanguages(w http.ResponseWriter, r *http.Request) {
	var out []language
	for _, code := range i18n.Supported() {
		out = append(out, language{Code: code, Name: i18n.Name(code)})
	}
	writeJSON(w, http.StatusOK, out)
}

// sessionStateResponse is the JSON response for the session endpoint.
type sessionStateResponse struct {
	ID       string             `json:"id"`
	State    app.State          `json:"state"`
	Messages []view.ChatMessage `json:"messages"`
	Uploads  []view.UploadItem  `json:"uploads"`
}

func (d *Dashboard) handleSessionState(w http.ResponseWriter, r *http.Request) {
	s, ok := d.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	msgs := s.coord.Messages()
	if msgs == nil {
		msgs = []view.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, sessionStateResponse{
		ID:       s.id,
		State:    s.coord.State(),
		Messages: msgs,
		Uploads:  s.coord.Uploads(),
	})
}

// handleUpload relays dropped files to the backend one at a time. Progress
// is pushed over the session's websocket; the response carries the final
// state of every item.
func (d *Dashboard) handleUpload(w http.ResponseWriter, r *http.Request) {
	s, ok := d.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form: " + err.Error()})
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no files in field \"file\""})
		return
	}

	files := make([]app.File, 0, len(headers))
	for _, fh := range headers {
		files = append(files, multipartFile(fh))
	}

	d.logger.Info("relaying upload", zapSession(s.id), zap.Int("files", len(files)))
	// The session context keeps the relay going if the page goes away; the
	// final state is replayed when the tab reconnects.
	items := s.coord.HandleFiles(s.ctx, files)
	writeJSON(w, http.StatusOK, items)
}

func multipartFile(fh *multipart.FileHeader) app.File {
	return app.File{
		Name: fh.Filename,
		Size: fh.Size,
		Open: func() (io.ReadCloser, error) { return fh.Open() },
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
