// File: cmd/run.go
package cmd

import (
	"fmt"

	"filemux/pkg/consolidate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runFlags struct {
	root   string
	tsDir  string
	txtDir string
	quiet  bool
}

// runCmd executes the consolidation batch against the project root.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the consolidation batch",
	Long:  `Run every built-in job against the project root, writing one consolidated output file per job and format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := consolidate.DefaultConfig()
		cfg.RootDir = runFlags.root
		if runFlags.tsDir != "" {
			cfg.TSDir = runFlags.tsDir
		}
		if runFlags.txtDir != "" {
			cfg.TxtDir = runFlags.txtDir
		}

		var presenter consolidate.Presenter = consolidate.NewConsolePresenter()
		if runFlags.quiet {
			presenter = consolidate.NopPresenter{}
		}

		summary, err := consolidate.Execute(cfg, presenter, logger)
		if err != nil {
			return fmt.Errorf("consolidation failed: %w", err)
		}

		logger.Info("run finished",
			zap.Int("totalFiles", summary.TotalFiles),
			zap.Int("processedJobs", summary.ProcessedJobs),
			zap.Int("skippedJobs", summary.SkippedJobs),
			zap.Int("failedJobs", summary.FailedJobs))
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runFlags.root, "root", ".", "Project root the job patterns expand against")
	runCmd.Flags().StringVar(&runFlags.tsDir, "ts-dir", "", "Override the TypeScript mirror output directory")
	runCmd.Flags().StringVar(&runFlags.txtDir, "txt-dir", "", "Override the plain-text mirror output directory")
	runCmd.Flags().BoolVarP(&runFlags.quiet, "quiet", "q", false, "Suppress console output")

	RootCmd.AddCommand(runCmd)
}
