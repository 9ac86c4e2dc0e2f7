// Package consolidate locates files by glob pattern, wraps each one in
// start/end banners, and concatenates them into one output file per job.
package consolidate

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Execute validates the configuration, expands the built-in job table into
// one job per output format, and runs the batch. It is the entry point used
// by the run command.
func Execute(cfg Config, presenter Presenter, logger *zap.Logger) (RunSummary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	startTime := time.Now()
	logger.Info("starting consolidation", zap.String("root", cfg.RootDir))

	defs := DefaultJobs()
	if err := cfg.Validate(defs); err != nil {
		return RunSummary{}, fmt.Errorf("invalid configuration: %w", err)
	}

	jobs := BuildJobs(defs, cfg)
	summary, err := NewBatchRunner(cfg, presenter, logger).Run(jobs)
	if err != nil {
		return summary, fmt.Errorf("batch run failed: %w", err)
	}

	logger.Info("consolidation completed",
		zap.Int("totalFiles", summary.TotalFiles),
		zap.Int("processedJobs", summary.ProcessedJobs),
		zap.Int("skippedJobs", summary.SkippedJobs),
		zap.Int("failedJobs", summary.FailedJobs),
		zap.Duration("elapsed", time.Since(startTime)))
	return summary, nil
}
