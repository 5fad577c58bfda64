package reportwriting

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"fleetsum/internal/core/domain/summary"
	"fleetsum/internal/core/ports"
)

// countHeader is the fixed name of the second output column.
const countHeader = "Count"

/*
CSVWriter persists frequency tables as two-column CSV files. It
implements the ports.ReportWriter interface.
*/
type CSVWriter struct{}

// NewCSVWriter creates a new CSVWriter.
func NewCSVWriter() ports.ReportWriter {
	return &CSVWriter{}
}

// WriteFrequencyTable implements the ports.ReportWriter interface. The
// file gets a header row of valueHeader and "Count", then one row per
// distinct value in table order. An existing file at path is replaced.
func (w *CSVWriter) WriteFrequencyTable(path string, valueHeader string, table summary.FrequencyTable) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %v", summary.ErrOutputDirUnwritable, path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{valueHeader, countHeader}); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, fc := range table {
		if err := writer.Write([]string{fc.Value, strconv.Itoa(fc.Count)}); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush report file %s: %w", path, err)
	}
	return nil
}
