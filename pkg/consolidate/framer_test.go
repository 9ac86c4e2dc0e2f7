package consolidate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameBracketsContent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.ts", "const x = 1;\n")

	f := NewContentFramer(root, FrameStyle{Glyph: "-", Width: 10, Padding: 1})
	framed, err := f.Frame("src/a.ts")
	require.NoError(t, err)

	divider := strings.Repeat("-", 10)
	start := strings.Index(framed, "// START: src/a.ts")
	content := strings.Index(framed, "const x = 1;")
	end := strings.Index(framed, "// END: src/a.ts")

	require.GreaterOrEqual(t, start, 0)
	require.Greater(t, content, start)
	require.Greater(t, end, content)
	assert.True(t, strings.HasSuffix(framed, divider+"\n"+divider+"\n"),
		"frame should end with two divider lines")
}

func TestFrameZeroValueStyleFallsBackToDefault(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.txt", "hello")

	f := NewContentFramer(root, FrameStyle{})
	framed, err := f.Frame("a.txt")
	require.NoError(t, err)

	assert.Contains(t, framed, strings.Repeat(DefaultStyle.Glyph, DefaultStyle.Width))
	assert.Contains(t, framed, "hello")
}

func TestFrameMissingFile(t *testing.T) {
	root := t.TempDir()

	f := NewContentFramer(root, DefaultStyle)
	_, err := f.Frame("src/gone.ts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "src/gone.ts")
}
