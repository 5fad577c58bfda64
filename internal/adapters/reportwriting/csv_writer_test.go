package reportwriting

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fleetsum/internal/core/domain/summary"
)

func TestCSVWriter_WriteFrequencyTable(t *testing.T) {
	tests := []struct {
		name        string
		valueHeader string
		table       summary.FrequencyTable
		wantContent string
	}{
		{
			name:        "table with rows",
			valueHeader: "Operating System",
			table: summary.FrequencyTable{
				{Value: "RHEL 9", Count: 1},
				{Value: "Ubuntu 22.04", Count: 3},
			},
			wantContent: "Operating System,Count\nRHEL 9,1\nUbuntu 22.04,3\n",
		},
		{
			name:        "empty table writes header only",
			valueHeader: "Vulnerability",
			table:       summary.FrequencyTable{},
			wantContent: "Vulnerability,Count\n",
		},
		{
			name:        "values needing quoting",
			valueHeader: "Hostname",
			table: summary.FrequencyTable{
				{Value: "web-01, primary", Count: 2},
			},
			wantContent: "Hostname,Count\n\"web-01, primary\",2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "summary.csv")
			writer := NewCSVWriter()

			if err := writer.WriteFrequencyTable(path, tt.valueHeader, tt.table); err != nil {
				t.Fatalf("WriteFrequencyTable() unexpected error = %v", err)
			}

			gotContent, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("Failed to read back report file: %v", err)
			}
			if string(gotContent) != tt.wantContent {
				t.Errorf("WriteFrequencyTable() wrote %q, want %q", string(gotContent), tt.wantContent)
			}
		})
	}

	t.Run("destination directory does not exist", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "summary.csv")
		writer := NewCSVWriter()

		err := writer.WriteFrequencyTable(path, "Hostname", summary.FrequencyTable{})
		if err == nil {
			t.Fatal("WriteFrequencyTable() expected an error for a missing destination directory, got nil")
		}
		if !errors.Is(err, summary.ErrOutputDirUnwritable) {
			t.Errorf("WriteFrequencyTable() error = %v, want errors.Is(err, summary.ErrOutputDirUnwritable)", err)
		}
	})
}
