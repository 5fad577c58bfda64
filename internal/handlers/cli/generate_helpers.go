package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fleetsum/internal/core/domain/summary"
	"fleetsum/internal/core/ports"
	"fleetsum/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// timestampLayout stamps every output filename from one run with the
// same generation time, so earlier runs are never overwritten.
const timestampLayout = "20060102_150405"

// reportFile describes one of the three outputs: its filename prefix,
// the name of its value column, and which table of the report it holds.
type reportFile struct {
	filenamePrefix string
	valueHeader    string
	table          func(summary.Report) summary.FrequencyTable
}

// reportFiles fixes the order and naming of the three outputs.
var reportFiles = []reportFile{
	{"hostname_summary_", "Hostname", func(r summary.Report) summary.FrequencyTable { return r.Hostnames }},
	{"os_summary_", "Operating System", func(r summary.Report) summary.FrequencyTable { return r.OperatingSystems }},
	{"vuln_", "Vulnerability", func(r summary.Report) summary.FrequencyTable { return r.Vulnerabilities }},
}

// runGenerateCmd contains the core logic for the 'generate' command.
func runGenerateCmd(
	_ *cobra.Command,
	args []string,
	recordSource ports.RecordSource,
	summaryService ports.SummaryService,
	reportWriter ports.ReportWriter,
	config ports.RunConfig,
) error {
	inputPath, outputDir := resolvePaths(args, config)

	fmt.Println(ui.InfoColor(fmt.Sprintf("Reading inventory export (%s)...", recordSource.SourceIdentifier(inputPath))))
	table, err := recordSource.ReadTable(inputPath)
	if err != nil {
		return fmt.Errorf("could not read inventory export: %w", err)
	}

	report, err := summaryService.BuildReport(table)
	if err != nil {
		return fmt.Errorf("could not build summary report: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("%w: %s: %v", summary.ErrOutputDirUnwritable, outputDir, err)
	}

	timestamp := time.Now().Format(timestampLayout)
	writtenPaths, err := writeReportFiles(report, outputDir, timestamp, reportWriter)
	if err != nil {
		return err
	}

	fmt.Println(ui.SuccessColor("\nSummary reports generated successfully:"))
	for _, p := range writtenPaths {
		fmt.Printf("  - %s\n", ui.PathColor(p))
	}
	return nil
}

// resolvePaths applies the positional-argument defaults: the configured
// input file when none is given, and the input file's directory as the
// output directory.
func resolvePaths(args []string, config ports.RunConfig) (inputPath, outputDir string) {
	inputPath = config.InputFile
	if len(args) > 0 && args[0] != "" {
		inputPath = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		return inputPath, args[1]
	}
	return inputPath, filepath.Dir(inputPath)
}

// writeReportFiles writes the three summaries, aborting on the first
// failure. There is no partial-success mode: the caller treats any error
// as terminal for the run.
func writeReportFiles(report summary.Report, outputDir, timestamp string, reportWriter ports.ReportWriter) ([]string, error) {
	writtenPaths := make([]string, 0, len(reportFiles))
	for _, rf := range reportFiles {
		ftable := rf.table(report)
		path := filepath.Join(outputDir, rf.filenamePrefix+timestamp+".csv")

		if err := reportWriter.WriteFrequencyTable(path, rf.valueHeader, ftable); err != nil {
			return nil, fmt.Errorf("could not write %s summary: %w", rf.valueHeader, err)
		}

		fmt.Println(ui.DetailColor(fmt.Sprintf("  - %s summary: %d distinct values", rf.valueHeader, len(ftable))))
		writtenPaths = append(writtenPaths, path)
	}
	return writtenPaths, nil
}
