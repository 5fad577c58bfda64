package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"

	"fleetsum/internal/core/domain/inventory"
	"fleetsum/internal/core/domain/summary"
	"fleetsum/internal/core/ports"
)

/*
RecordSource reads inventory exports from CSV files on the local file
system. It implements the ports.RecordSource interface.
*/
type RecordSource struct{}

// NewRecordSource creates a new CSV-backed RecordSource.
func NewRecordSource() ports.RecordSource {
	return &RecordSource{}
}

/*
ReadTable implements the ports.RecordSource interface. The whole file is
read into memory; the first row becomes the header and every following
row a Record. Rows narrower or wider than the header are kept as they
are — short rows surface later as missing values, not as parse errors.
*/
func (rs *RecordSource) ReadTable(path string) (inventory.Table, error) {
	var table inventory.Table

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return table, fmt.Errorf("%w: %s", summary.ErrInputNotFound, path)
		}
		return table, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // allow ragged rows

	rows, err := reader.ReadAll()
	if err != nil {
		return table, fmt.Errorf("%w: %s: %v", summary.ErrInputUnparseable, path, err)
	}
	if len(rows) == 0 {
		return table, fmt.Errorf("%w: %s: file has no header row", summary.ErrInputUnparseable, path)
	}

	table.Columns = rows[0]
	table.Records = make([]inventory.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		table.Records = append(table.Records, inventory.Record{Fields: row})
	}

	return table, nil
}

// SourceIdentifier implements the ports.RecordSource interface.
func (rs *RecordSource) SourceIdentifier(path string) string {
	return fmt.Sprintf("File: %s", toUserFriendlyPath(path))
}
