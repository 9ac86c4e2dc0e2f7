// File: pkg/consolidate/matcher.go
package consolidate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// ErrBadPattern marks a malformed glob in the static job table or ignore
// list. Because patterns are compiled into the binary, this is a
// configuration bug and aborts the whole run.
var ErrBadPattern = errors.New("malformed glob pattern")

// PathMatcher expands job patterns against the project root and filters out
// ignored paths and the job's own output file.
type PathMatcher struct {
	root    string
	ignores []string
	logger  *zap.Logger
}

// NewPathMatcher creates a matcher rooted at root. The ignore globs apply to
// every job; each FindFiles call additionally excludes that job's output.
func NewPathMatcher(root string, ignores []string, logger *zap.Logger) *PathMatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PathMatcher{root: root, ignores: ignores, logger: logger}
}

// FindFiles expands the patterns and returns the union of matches,
// deduplicated in first-match order, with excluded paths removed. Paths are
// relative to the root and slash-separated. Zero matches is a normal result,
// not an error.
func (m *PathMatcher) FindFiles(patterns []string, outputFile string) ([]string, error) {
	fsys := os.DirFS(m.root)

	seen := make(map[string]struct{})
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, normalizePattern(pattern), doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadPattern, pattern, err)
		}
		for _, match := range matches {
			if _, dup := seen[match]; dup {
				continue
			}
			seen[match] = struct{}{}
			files = append(files, match)
		}
	}

	exclusions := make([]string, 0, len(m.ignores)+1)
	exclusions = append(exclusions, m.ignores...)
	exclusions = append(exclusions, filepath.ToSlash(outputFile))

	kept := files[:0]
	for _, file := range files {
		excluded, err := matchesAny(exclusions, file)
		if err != nil {
			return nil, err
		}
		if excluded {
			m.logger.Debug("excluded matched file", zap.String("file", file))
			continue
		}
		kept = append(kept, file)
	}
	return kept, nil
}

func matchesAny(globs []string, path string) (bool, error) {
	for _, glob := range globs {
		ok, err := doublestar.Match(glob, path)
		if err != nil {
			return false, fmt.Errorf("%w: %q: %v", ErrBadPattern, glob, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// normalizePattern strips a leading "./" so patterns written shell-style
// stay valid io/fs paths.
func normalizePattern(pattern string) string {
	return strings.TrimPrefix(pattern, "./")
}
