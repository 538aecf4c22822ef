package view

import (
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/campusnexus/nexus/internal/api"
	"github.com/campusnexus/nexus/internal/i18n"
)

// UploadStatus is the lifecycle state of one queued file.
type UploadStatus string

const (
	UploadUploading UploadStatus = "uploading"
	UploadSuccess   UploadStatus = "success"
	UploadError     UploadStatus = "error"
)

// UploadItem is the view of one file in the upload list.
type UploadItem struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Size       int64        `json:"size"`
	SizeText   string       `json:"size_text"`
	Progress   int          `json:"progress"`
	Status     UploadStatus `json:"status"`
	StatusText string       `json:"status_text"`
	Chunks     int          `json:"chunks,omitempty"`
}

// NewUploadItem creates an item in the uploading state at 0%.
func NewUploadItem(name string, size int64, t i18n.Table) *UploadItem {
	return &UploadItem{
		ID:         uuid.NewString(),
		Name:       name,
		Size:       size,
		SizeText:   FormatFileSize(size),
		Status:     UploadUploading,
		StatusText: t.T("uploading"),
	}
}

// Advance moves simulated progress forward by step without passing limit.
// It reports whether the displayed percentage changed.
func (u *UploadItem) Advance(step, limit int) bool {
	if u.Status != UploadUploading || u.Progress+step > limit {
		return false
	}
	u.Progress += step
	return true
}

// Succeed marks the item as indexed.
func (u *UploadItem) Succeed(resp *api.UploadResponse, t i18n.Table) {
	chunks := 0
	if resp != nil && resp.Metadata != nil {
		chunks = resp.Metadata.TotalChunks
	}
	u.Progress = 100
	u.Status = UploadSuccess
	u.Chunks = chunks
	u.StatusText = t.Tf("uploaded", chunks)
}

// Fail marks the item as failed, preferring the backend's detail message.
func (u *UploadItem) Fail(err error, t i18n.Table) {
	u.Status = UploadError
	msg := api.Detail(err)
	if msg == "" {
		msg = t.T("uploadFailed")
	}
	u.StatusText = msg
}

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders a byte count with at most two decimals, e.g.
// "1.5 KB" or "0 Bytes".
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	v := float64(bytes)
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[i]
}
