// File: pkg/consolidate/batch.go
package consolidate

import (
	"errors"

	"go.uber.org/zap"
)

// BatchRunner executes every job strictly in sequence and aggregates totals.
// Jobs may target overlapping source trees, so there is deliberately no
// parallelism here.
type BatchRunner struct {
	runner    *JobRunner
	presenter Presenter
	logger    *zap.Logger
}

// NewBatchRunner builds a batch runner from the run configuration.
func NewBatchRunner(cfg Config, presenter Presenter, logger *zap.Logger) *BatchRunner {
	if presenter == nil {
		presenter = NopPresenter{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchRunner{
		runner:    NewJobRunner(cfg, presenter, logger),
		presenter: presenter,
		logger:    logger,
	}
}

// Run executes the jobs one at a time. A malformed pattern aborts the whole
// run; read and write failures abort only their job, which is reported and
// counted while the batch continues. The summary is emitted only when at
// least one file was consolidated.
func (b *BatchRunner) Run(jobs []Job) (RunSummary, error) {
	b.presenter.Header()

	var summary RunSummary
	for _, job := range jobs {
		result, err := b.runner.Run(job)
		if err != nil {
			if errors.Is(err, ErrBadPattern) {
				return summary, err
			}
			b.presenter.JobFailed(job, err)
			summary.FailedJobs++
			continue
		}
		if result.FilesProcessed > 0 {
			summary.TotalFiles += result.FilesProcessed
			summary.ProcessedJobs++
		} else {
			summary.SkippedJobs++
		}
	}

	if summary.TotalFiles > 0 {
		b.presenter.Summary(summary)
	}
	return summary, nil
}
