package consolidate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteEndToEnd(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/components/button.ts", "export const Button = 1;\n")
	writeFile(t, root, "src/services/api.ts", "export const api = {};\n")
	writeFile(t, root, "node_modules/pkg/index.ts", "ignored")

	cfg := DefaultConfig()
	cfg.RootDir = root

	rec := &recordingPresenter{}
	summary, err := Execute(cfg, rec, nil)
	require.NoError(t, err)

	// Two matching definitions, each mirrored into ts and txt form.
	assert.Equal(t, 4, summary.TotalFiles)
	assert.Equal(t, 4, summary.ProcessedJobs)
	assert.Equal(t, 6, summary.SkippedJobs)
	assert.Equal(t, 0, summary.FailedJobs)

	tsOut := readFile(t, root, "_consolidated/ts/1_ALL_COMPONENTS.ts")
	assert.Contains(t, tsOut, "// START: src/components/button.ts")
	assert.Contains(t, tsOut, "export const Button = 1;")
	assert.NotContains(t, tsOut, "ignored", "globally ignored paths must never be consolidated")

	txtOut := readFile(t, root, "_consolidated/txt/2_ALL_SERVICES.txt")
	assert.Contains(t, txtOut, "// START: src/services/api.ts")

	require.Len(t, rec.summaries, 1)
}

func TestExecuteIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/components/button.ts", "export const Button = 1;\n")

	cfg := DefaultConfig()
	cfg.RootDir = root

	first, err := Execute(cfg, nil, nil)
	require.NoError(t, err)
	firstOut := readFile(t, root, "_consolidated/ts/1_ALL_COMPONENTS.ts")

	// The ignore list keeps the output tree out of discovery, so repeated
	// runs see the same source set.
	second, err := Execute(cfg, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstOut, readFile(t, root, "_consolidated/ts/1_ALL_COMPONENTS.ts"))
}

func TestExecuteRejectsInvalidConfig(t *testing.T) {
	_, err := Execute(Config{}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
