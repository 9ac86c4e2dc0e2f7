// File: pkg/consolidate/jobs.go
package consolidate

import (
	"fmt"
	"path"
	"strings"
)

// OutputFormat selects the extension and mirror directory for a job's output.
type OutputFormat string

const (
	FormatTS  OutputFormat = "ts"
	FormatTxt OutputFormat = "txt"
)

// JobDefinition describes one named group of glob patterns to consolidate.
type JobDefinition struct {
	Name     string   // Short identifier, uppercased into the output file name
	Label    string   // Human-readable label shown on the console
	Patterns []string // Glob patterns expanded against the project root
}

// Job binds a definition to a concrete output file in one format.
// OutputFile is relative to the project root, slash-separated.
type Job struct {
	JobDefinition
	Format     OutputFormat
	OutputFile string
}

// BuildJobs expands each definition into one job per output format, so the
// same definitions produce both a TypeScript mirror and a plain-text mirror.
func BuildJobs(defs []JobDefinition, cfg Config) []Job {
	targets := []struct {
		dir    string
		format OutputFormat
	}{
		{cfg.TSDir, FormatTS},
		{cfg.TxtDir, FormatTxt},
	}

	jobs := make([]Job, 0, len(defs)*len(targets))
	for _, target := range targets {
		for i, def := range defs {
			name := fmt.Sprintf("%d_ALL_%s.%s", i+1, strings.ToUpper(def.Name), target.format)
			jobs = append(jobs, Job{
				JobDefinition: def,
				Format:        target.format,
				OutputFile:    path.Join(target.dir, name),
			})
		}
	}
	return jobs
}
