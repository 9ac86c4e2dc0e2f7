// File: pkg/consolidate/presenter.go
package consolidate

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Presenter receives run notifications. The core never depends on how an
// implementation renders them, which keeps headless and test runs trivial.
type Presenter interface {
	Header()
	JobStart(job Job, fileCount int)
	FileAppended(path string)
	JobDone(job Job, result JobResult)
	JobFailed(job Job, err error)
	Summary(summary RunSummary)
}

// NopPresenter discards all notifications.
type NopPresenter struct{}

func (NopPresenter) Header()                {}
func (NopPresenter) JobStart(Job, int)      {}
func (NopPresenter) FileAppended(string)    {}
func (NopPresenter) JobDone(Job, JobResult) {}
func (NopPresenter) JobFailed(Job, error)   {}
func (NopPresenter) Summary(RunSummary)     {}

// ConsolePresenter renders colored status lines and a per-job progress bar.
// When stdout is not a terminal it falls back to plain per-file lines.
type ConsolePresenter struct {
	out         io.Writer
	interactive bool
	bar         *progressbar.ProgressBar
}

// NewConsolePresenter creates a presenter writing to stdout.
func NewConsolePresenter() *ConsolePresenter {
	return &ConsolePresenter{
		out:         os.Stdout,
		interactive: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (p *ConsolePresenter) Header() {
	color.New(color.FgCyan, color.Bold).Fprintln(p.out, "filemux — project file consolidation")
	fmt.Fprintln(p.out, strings.Repeat("─", 44))
}

func (p *ConsolePresenter) JobStart(job Job, fileCount int) {
	color.New(color.FgYellow).Fprintf(p.out, "▶ %s", job.Label)
	fmt.Fprintf(p.out, " → %s (%d files)\n", job.OutputFile, fileCount)
	if p.interactive {
		p.bar = progressbar.NewOptions(fileCount,
			progressbar.OptionSetWriter(p.out),
			progressbar.OptionSetDescription(job.Name),
			progressbar.OptionClearOnFinish(),
		)
	}
}

func (p *ConsolePresenter) FileAppended(path string) {
	if p.bar != nil {
		_ = p.bar.Add(1)
		return
	}
	fmt.Fprintf(p.out, "  + %s\n", path)
}

func (p *ConsolePresenter) JobDone(job Job, result JobResult) {
	if p.bar != nil {
		_ = p.bar.Finish()
		p.bar = nil
	}
	color.New(color.FgGreen).Fprintf(p.out, "✔ %s", job.Name)
	fmt.Fprintf(p.out, ": %d files consolidated\n", result.FilesProcessed)
}

func (p *ConsolePresenter) JobFailed(job Job, err error) {
	p.bar = nil
	color.New(color.FgRed).Fprintf(p.out, "✘ %s", job.Name)
	fmt.Fprintf(p.out, ": %v\n", err)
}

func (p *ConsolePresenter) Summary(s RunSummary) {
	line := fmt.Sprintf(" %d files consolidated · %d jobs processed · %d skipped ",
		s.TotalFiles, s.ProcessedJobs, s.SkippedJobs)
	if s.FailedJobs > 0 {
		line = fmt.Sprintf("%s· %d failed ", line, s.FailedJobs)
	}

	width := len([]rune(line))
	fmt.Fprintln(p.out, "┌"+strings.Repeat("─", width)+"┐")
	fmt.Fprint(p.out, "│")
	color.New(color.FgGreen, color.Bold).Fprint(p.out, line)
	fmt.Fprintln(p.out, "│")
	fmt.Fprintln(p.out, "└"+strings.Repeat("─", width)+"┘")
}
