package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"fleetsum/internal/core/domain/summary"
	"fleetsum/internal/core/ports"
	"fleetsum/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewPreviewCommand creates the 'preview' subcommand.
func NewPreviewCommand(
	recordSource ports.RecordSource,
	summaryService ports.SummaryService,
	config ports.RunConfig,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [input-file]",
		Short: "Print the three frequency tables without writing files.",
		Long: `Reads the inventory export and renders the hostname, operating system,
and vulnerability summaries to the terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreviewCmd(cmd, args, recordSource, summaryService, config)
		},
	}
	return cmd
}

// runPreviewCmd contains the core logic for the 'preview' command.
func runPreviewCmd(
	_ *cobra.Command,
	args []string,
	recordSource ports.RecordSource,
	summaryService ports.SummaryService,
	config ports.RunConfig,
) error {
	inputPath := config.InputFile
	if len(args) > 0 && args[0] != "" {
		inputPath = args[0]
	}

	table, err := recordSource.ReadTable(inputPath)
	if err != nil {
		return fmt.Errorf("could not read inventory export: %w", err)
	}

	report, err := summaryService.BuildReport(table)
	if err != nil {
		return fmt.Errorf("could not build summary report: %w", err)
	}

	fmt.Println(ui.HeaderColor(fmt.Sprintf("Summary of %s (%d records):", recordSource.SourceIdentifier(inputPath), len(table.Records))))
	for _, rf := range reportFiles {
		ftable := rf.table(report)
		fmt.Println(ui.InfoColor(fmt.Sprintf("\n%s (%d distinct values):", ui.ReportNameColor(rf.valueHeader), len(ftable))))
		if len(ftable) == 0 {
			fmt.Println(ui.DetailColor("  (no values)"))
			continue
		}
		renderFrequencyTable(os.Stdout, rf.valueHeader, ftable)
	}
	return nil
}

// renderFrequencyTable prints one frequency table with the same two
// columns the generated CSV files carry.
func renderFrequencyTable(out io.Writer, valueHeader string, ftable summary.FrequencyTable) {
	tw := tablewriter.NewWriter(out)
	tw.SetHeader([]string{valueHeader, "Count"})
	tw.SetBorder(true)
	tw.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, fc := range ftable {
		tw.Append([]string{fc.Value, strconv.Itoa(fc.Count)})
	}
	tw.Render()
}
