// Package progress reports per-document feedback during folder ingestion.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives one event per discovered document: Done with the
// chunk count on success, Skip otherwise.
type Reporter interface {
	Start(total int)
	Done(name string, chunks int)
	Skip(name string)
	Finish()
}

// NewReporter returns a TerminalReporter if running in an interactive
// terminal, or a CIReporter if the CI environment variable is set.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return NewCIReporter(os.Stderr)
	}
	return &TerminalReporter{}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Ingesting documents"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Done(name string, chunks int) {
	if r.bar != nil {
		r.bar.Describe(name)
		_ = r.bar.Add(1)
	}
}

func (r *TerminalReporter) Skip(name string) {
	if r.bar != nil {
		r.bar.Describe(name + " (skipped)")
		_ = r.bar.Add(1)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	w       io.Writer
	total   int
	current int
}

// NewCIReporter creates a CIReporter writing to w.
func NewCIReporter(w io.Writer) *CIReporter {
	return &CIReporter{w: w}
}

func (r *CIReporter) Start(total int) {
	r.total = total
	r.current = 0
	fmt.Fprintf(r.w, "Ingesting %d documents\n", total)
}

func (r *CIReporter) Done(name string, chunks int) {
	r.current++
	fmt.Fprintf(r.w, "[%d/%d] %s: %d chunks\n", r.current, r.total, name, chunks)
}

func (r *CIReporter) Skip(name string) {
	r.current++
	fmt.Fprintf(r.w, "[%d/%d] %s: skipped\n", r.current, r.total, name)
}

func (r *CIReporter) Finish() {
	fmt.Fprintln(r.w, "Ingestion complete")
}
