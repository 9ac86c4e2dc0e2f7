// File: pkg/consolidate/framer.go
package consolidate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FrameStyle controls the decorative banners around each file's content.
// The banners are purely cosmetic; only their bracketing role matters.
type FrameStyle struct {
	Glyph   string // Divider character, repeated Width times per line
	Width   int    // Divider line width
	Padding int    // Blank lines around the banners
}

// DefaultStyle matches the output the tool has always produced.
var DefaultStyle = FrameStyle{Glyph: "=", Width: 80, Padding: 2}

// ContentFramer reads a source file and wraps its text in start/end banners
// naming the file, plus trailing divider lines separating it from the next.
type ContentFramer struct {
	root  string
	style FrameStyle
}

// NewContentFramer creates a framer for files under root. Zero-value style
// fields fall back to DefaultStyle.
func NewContentFramer(root string, style FrameStyle) *ContentFramer {
	if style.Glyph == "" {
		style.Glyph = DefaultStyle.Glyph
	}
	if style.Width <= 0 {
		style.Width = DefaultStyle.Width
	}
	if style.Padding < 0 {
		style.Padding = DefaultStyle.Padding
	}
	return &ContentFramer{root: root, style: style}
}

// Frame reads the file at relPath (relative to the root) and returns its raw
// content bracketed by banners. A file that vanished or became unreadable
// between discovery and read surfaces as a wrapped error so the caller can
// abort the job.
func (f *ContentFramer) Frame(relPath string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(f.root, filepath.FromSlash(relPath)))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", relPath, err)
	}

	divider := strings.Repeat(f.style.Glyph, f.style.Width)
	pad := strings.Repeat("\n", f.style.Padding)

	var b strings.Builder
	b.WriteString(pad)
	fmt.Fprintf(&b, "%s\n// START: %s\n%s\n", divider, relPath, divider)
	b.WriteString(pad)
	b.Write(raw)
	b.WriteString(pad)
	fmt.Fprintf(&b, "%s\n// END: %s\n%s\n", divider, relPath, divider)
	b.WriteString(divider + "\n")
	b.WriteString(divider + "\n")
	return b.String(), nil
}
