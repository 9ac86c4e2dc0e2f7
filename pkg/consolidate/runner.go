// File: pkg/consolidate/runner.go
package consolidate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// JobRunner executes a single consolidation job: discover files, frame each
// one, and write the combined output.
type JobRunner struct {
	root      string
	matcher   *PathMatcher
	framer    *ContentFramer
	presenter Presenter
	logger    *zap.Logger
}

// NewJobRunner builds a runner from the run configuration.
func NewJobRunner(cfg Config, presenter Presenter, logger *zap.Logger) *JobRunner {
	if presenter == nil {
		presenter = NopPresenter{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobRunner{
		root:      cfg.RootDir,
		matcher:   NewPathMatcher(cfg.RootDir, cfg.IgnoreGlobs, logger),
		framer:    NewContentFramer(cfg.RootDir, cfg.Style),
		presenter: presenter,
		logger:    logger,
	}
}

// Run discovers the job's files and writes the consolidated output. A job
// with zero matches returns immediately: no directory creation, no output
// file, no console lines.
func (r *JobRunner) Run(job Job) (JobResult, error) {
	files, err := r.matcher.FindFiles(job.Patterns, job.OutputFile)
	if err != nil {
		return JobResult{}, err
	}
	if len(files) == 0 {
		r.logger.Debug("no files matched, skipping job", zap.String("job", job.Name))
		return JobResult{}, nil
	}

	r.presenter.JobStart(job, len(files))

	// Assemble every frame in memory before touching the output location,
	// so a failed read never leaves a partial file behind.
	var combined strings.Builder
	for _, file := range files {
		framed, err := r.framer.Frame(file)
		if err != nil {
			r.logger.Error("failed to read source file",
				zap.String("job", job.Name),
				zap.String("file", file),
				zap.Error(err))
			return JobResult{}, fmt.Errorf("job %s: %w", job.Name, err)
		}
		combined.WriteString(framed)
		r.presenter.FileAppended(file)
	}

	if err := r.writeOutput(job, combined.String()); err != nil {
		r.logger.Error("failed to write output",
			zap.String("job", job.Name),
			zap.String("outputFile", job.OutputFile),
			zap.Error(err))
		return JobResult{}, fmt.Errorf("job %s: %w", job.Name, err)
	}

	result := JobResult{FilesProcessed: len(files)}
	r.presenter.JobDone(job, result)
	r.logger.Info("job completed",
		zap.String("job", job.Name),
		zap.String("outputFile", job.OutputFile),
		zap.Int("filesProcessed", result.FilesProcessed))
	return result, nil
}

// writeOutput writes the content next to its final location and renames it
// into place. An interrupted or failed job leaves the previous output
// untouched; a completed rename fully replaces it.
func (r *JobRunner) writeOutput(job Job, content string) error {
	target := filepath.Join(r.root, filepath.FromSlash(job.OutputFile))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", target, err)
	}
	return nil
}
