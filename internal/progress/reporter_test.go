package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	_, ok := NewReporter(&bytes.Buffer{}).(*CIReporter)
	assert.True(t, ok)
}

func TestNewReporterTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	_, ok := NewReporter(&bytes.Buffer{}).(*TerminalReporter)
	assert.True(t, ok)
}

func TestCIReporterThrottles(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{out: &buf}

	r.Start("pyq.pdf")
	for p := 10; p <= 90; p += 10 {
		r.Update(p, "")
	}
	r.Finish("Uploaded (12 chunks)")

	assert.Equal(t, "Uploading pyq.pdf\n"+
		"[ 30%] pyq.pdf\n"+
		"[ 60%] pyq.pdf\n"+
		"[ 90%] pyq.pdf\n"+
		"pyq.pdf: Uploaded (12 chunks)\n", buf.String())
}

func TestTerminalReporterWritesBar(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{out: &buf}

	r.Update(50, "ignored before start")
	assert.Empty(t, buf.String())

	r.Start("notes.docx")
	r.Update(40, "")
	r.Finish("done")
	assert.NotEmpty(t, buf.String())
}
