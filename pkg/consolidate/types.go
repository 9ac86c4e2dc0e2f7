package consolidate

// JobResult holds the outcome of a single job run.
type JobResult struct {
	FilesProcessed int // Number of source files consolidated into the output
}

// RunSummary accumulates totals across a full batch run.
type RunSummary struct {
	TotalFiles    int // Files consolidated across all jobs
	ProcessedJobs int // Jobs that produced an output file
	SkippedJobs   int // Jobs whose patterns matched nothing
	FailedJobs    int // Jobs aborted by a read or write error
}
