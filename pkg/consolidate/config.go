// File: pkg/consolidate/config.go
package consolidate

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Config holds the settings for a consolidation run.
type Config struct {
	RootDir     string   // Project root the job patterns expand against
	TSDir       string   // Output directory for the TypeScript mirror, relative to RootDir
	TxtDir      string   // Output directory for the plain-text mirror, relative to RootDir
	IgnoreGlobs []string // Globs excluded from every job's results
	Style       FrameStyle
}

// DefaultConfig returns the configuration used by the run command.
func DefaultConfig() Config {
	return Config{
		RootDir: ".",
		TSDir:   "_consolidated/ts",
		TxtDir:  "_consolidated/txt",
		IgnoreGlobs: []string{
			"node_modules/**",
			"dist/**",
			"build/**",
			"coverage/**",
			"_consolidated/**",
			"**/*.d.ts",
		},
		Style: DefaultStyle,
	}
}

// DefaultJobs is the compiled-in job table. Definitions are created once at
// startup and never mutated afterwards.
func DefaultJobs() []JobDefinition {
	return []JobDefinition{
		{Name: "components", Label: "UI components", Patterns: []string{"src/components/**/*.ts", "src/components/**/*.tsx"}},
		{Name: "services", Label: "Service layer", Patterns: []string{"src/services/**/*.ts"}},
		{Name: "models", Label: "Data models", Patterns: []string{"src/models/**/*.ts", "src/types/**/*.ts"}},
		{Name: "utils", Label: "Utilities", Patterns: []string{"src/utils/**/*.ts", "src/helpers/**/*.ts"}},
		{Name: "config", Label: "Project configuration", Patterns: []string{"src/config/**/*.ts", "*.config.ts"}},
	}
}

// Validate checks the static configuration before any filesystem work starts.
// A malformed glob here is a configuration bug, so the whole run refuses to
// start rather than failing partway through.
func (c Config) Validate(defs []JobDefinition) error {
	if c.RootDir == "" {
		return fmt.Errorf("root directory must not be empty")
	}
	for _, glob := range c.IgnoreGlobs {
		if !doublestar.ValidatePattern(glob) {
			return fmt.Errorf("%w: ignore glob %q", ErrBadPattern, glob)
		}
	}
	for _, def := range defs {
		if def.Name == "" {
			return fmt.Errorf("job definition with empty name")
		}
		if len(def.Patterns) == 0 {
			return fmt.Errorf("job %q has no patterns", def.Name)
		}
		for _, pattern := range def.Patterns {
			if !doublestar.ValidatePattern(normalizePattern(pattern)) {
				return fmt.Errorf("%w: job %q pattern %q", ErrBadPattern, def.Name, pattern)
			}
		}
	}
	return nil
}
