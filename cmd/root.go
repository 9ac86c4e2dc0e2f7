package cmd

import (
	"filemux/pkg/logging"
	"filemux/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "filemux",
	Short: "Filemux consolidates project files into per-job bundles",
	Long: `Filemux expands each job's glob patterns against a project tree and
concatenates the matched files, wrapped in start/end banners, into one
output file per job.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return err
		}
		if debug {
			if err := logging.Setup(true, "filemux", version.Get().Version); err != nil {
				return err
			}
			logger = logging.Logger
		}
		return nil
	},
}

// Execute wires the provided logger into the command tree and runs it.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
