// Package progress renders upload progress on a terminal or in CI logs.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback for a single upload. Percentages run
// from 0 to 100.
type Reporter interface {
	Start(label string)
	Update(percent int, message string)
	Finish(message string)
}

// IsCI reports whether output is going to a CI log rather than a terminal.
func IsCI() bool {
	return os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != ""
}

// NewReporter returns a TerminalReporter, or a CIReporter if the CI
// environment variable is set. Output goes to w.
func NewReporter(w io.Writer) Reporter {
	if IsCI() {
		return &CIReporter{out: w}
	}
	return &TerminalReporter{out: w}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(label string) {
	r.bar = progressbar.NewOptions(100,
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
	)
}

func (r *TerminalReporter) Update(percent int, message string) {
	if r.bar != nil {
		if message != "" {
			r.bar.Describe(message)
		}
		_ = r.bar.Set(percent)
	}
}

func (r *TerminalReporter) Finish(message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Finish()
		fmt.Fprintln(r.out)
	}
}

// CIReporter prints line-by-line progress suitable for CI logs. Only
// changes of at least a quarter are printed.
type CIReporter struct {
	out   io.Writer
	label string
	last  int
}

func (r *CIReporter) Start(label string) {
	r.label = label
	r.last = 0
	fmt.Fprintf(r.out, "Uploading %s\n", label)
}

func (r *CIReporter) Update(percent int, message string) {
	if percent-r.last < 25 {
		return
	}
	r.last = percent
	fmt.Fprintf(r.out, "[%3d%%] %s\n", percent, r.label)
}

func (r *CIReporter) Finish(message string) {
	fmt.Fprintf(r.out, "%s: %s\n", r.label, message)
}
