package consolidate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile creates a file (and its parent directories) under root.
func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

// readFile reads a file under root and returns its content.
func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

// recordingPresenter captures every notification for assertions.
type recordingPresenter struct {
	headers   int
	started   []string
	files     []string
	done      []JobResult
	failed    []string
	summaries []RunSummary
}

func (r *recordingPresenter) Header() { r.headers++ }

func (r *recordingPresenter) JobStart(job Job, _ int) { r.started = append(r.started, job.Name) }

func (r *recordingPresenter) FileAppended(path string) { r.files = append(r.files, path) }

func (r *recordingPresenter) JobDone(_ Job, res JobResult) { r.done = append(r.done, res) }

func (r *recordingPresenter) JobFailed(job Job, _ error) { r.failed = append(r.failed, job.Name) }

func (r *recordingPresenter) Summary(s RunSummary) { r.summaries = append(r.summaries, s) }
