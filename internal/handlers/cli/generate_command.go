package cli

import (
	"fleetsum/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewGenerateCommand creates the 'generate' subcommand.
func NewGenerateCommand(
	recordSource ports.RecordSource,
	summaryService ports.SummaryService,
	reportWriter ports.ReportWriter,
	config ports.RunConfig,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [input-file] [output-dir]",
		Short: "Generate the three frequency-count report files.",
		Long: `Reads the inventory export and writes hostname, operating system, and
vulnerability summary CSVs, each stamped with the generation time.
The input file defaults to the configured one; the output directory
defaults to the input file's directory.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerateCmd(cmd, args, recordSource, summaryService, reportWriter, config)
		},
	}
	return cmd
}
