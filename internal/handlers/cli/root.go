package cli

import (
	"fmt"

	"fleetsum/internal/core/ports"
	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func NewRootCommand(
	version string,
	recordSource ports.RecordSource,
	summaryService ports.SummaryService,
	reportWriter ports.ReportWriter,
	config ports.RunConfig,
) *cobra.Command {
	rootCmd = &cobra.Command{
		Use:   "fleetsum",
		Short: "fleetsum summarizes server inventory exports.",
		Long: `fleetsum reads a CSV export of server inventory and vulnerability data
and produces frequency-count reports by hostname, operating system,
and vulnerability.`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if recordSource == nil && (cmd.Name() == "generate" || cmd.Name() == "preview") {
				return fmt.Errorf("record source not initialized for command %s", cmd.Name())
			}
			if summaryService == nil && (cmd.Name() == "generate" || cmd.Name() == "preview") {
				return fmt.Errorf("summary service not initialized for command %s", cmd.Name())
			}
			if reportWriter == nil && cmd.Name() == "generate" {
				return fmt.Errorf("report writer not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewGenerateCommand(recordSource, summaryService, reportWriter, config))
	rootCmd.AddCommand(NewPreviewCommand(recordSource, summaryService, config))

	return rootCmd
}
