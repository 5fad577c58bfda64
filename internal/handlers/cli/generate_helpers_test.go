package cli

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"fleetsum/internal/core/domain/inventory"
	"fleetsum/internal/core/domain/summary"
	"fleetsum/internal/core/ports"
	"fleetsum/internal/core/testutil"
)

func TestResolvePaths(t *testing.T) {
	config := ports.RunConfig{InputFile: "/data/exports/input_data.csv"}

	tests := []struct {
		name          string
		args          []string
		wantInputPath string
		wantOutputDir string
	}{
		{
			name:          "no arguments uses configured input and its directory",
			args:          nil,
			wantInputPath: "/data/exports/input_data.csv",
			wantOutputDir: "/data/exports",
		},
		{
			name:          "input argument overrides configuration",
			args:          []string{"/tmp/fleet.csv"},
			wantInputPath: "/tmp/fleet.csv",
			wantOutputDir: "/tmp",
		},
		{
			name:          "output directory argument overrides the input's directory",
			args:          []string{"/tmp/fleet.csv", "/var/reports"},
			wantInputPath: "/tmp/fleet.csv",
			wantOutputDir: "/var/reports",
		},
		{
			name:          "bare filename input defaults output to its directory",
			args:          []string{"fleet.csv"},
			wantInputPath: "fleet.csv",
			wantOutputDir: ".",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotInputPath, gotOutputDir := resolvePaths(tt.args, config)

			if gotInputPath != tt.wantInputPath {
				t.Errorf("resolvePaths() inputPath = %q, want %q", gotInputPath, tt.wantInputPath)
			}
			if gotOutputDir != tt.wantOutputDir {
				t.Errorf("resolvePaths() outputDir = %q, want %q", gotOutputDir, tt.wantOutputDir)
			}
		})
	}
}

func TestWriteReportFiles(t *testing.T) {
	report := summary.Report{
		Hostnames:        summary.FrequencyTable{{Value: "h1", Count: 1}},
		OperatingSystems: summary.FrequencyTable{{Value: "osA", Count: 2}},
		Vulnerabilities:  summary.FrequencyTable{{Value: "CVE-2024-0001", Count: 3}},
	}

	t.Run("writes the three files with the run timestamp", func(t *testing.T) {
		type writeCall struct {
			path        string
			valueHeader string
			total       int
		}
		var calls []writeCall

		mockWriter := &testutil.MockReportWriter{
			WriteFrequencyTableFunc: func(path string, valueHeader string, table summary.FrequencyTable) error {
				calls = append(calls, writeCall{path: path, valueHeader: valueHeader, total: table.Total()})
				return nil
			},
		}

		gotPaths, err := writeReportFiles(report, "/var/reports", "20250101_120000", mockWriter)
		if err != nil {
			t.Fatalf("writeReportFiles() unexpected error = %v", err)
		}

		wantCalls := []writeCall{
			{path: filepath.Join("/var/reports", "hostname_summary_20250101_120000.csv"), valueHeader: "Hostname", total: 1},
			{path: filepath.Join("/var/reports", "os_summary_20250101_120000.csv"), valueHeader: "Operating System", total: 2},
			{path: filepath.Join("/var/reports", "vuln_20250101_120000.csv"), valueHeader: "Vulnerability", total: 3},
		}
		if !reflect.DeepEqual(calls, wantCalls) {
			t.Errorf("writeReportFiles() calls = %+v, want %+v", calls, wantCalls)
		}

		wantPaths := []string{wantCalls[0].path, wantCalls[1].path, wantCalls[2].path}
		if !reflect.DeepEqual(gotPaths, wantPaths) {
			t.Errorf("writeReportFiles() paths = %v, want %v", gotPaths, wantPaths)
		}
	})

	t.Run("aborts on the first write failure", func(t *testing.T) {
		writeErr := errors.New("disk full")
		var callCount int

		mockWriter := &testutil.MockReportWriter{
			WriteFrequencyTableFunc: func(path string, valueHeader string, table summary.FrequencyTable) error {
				callCount++
				if valueHeader == "Operating System" {
					return writeErr
				}
				return nil
			},
		}

		_, err := writeReportFiles(report, "/var/reports", "20250101_120000", mockWriter)
		if err == nil {
			t.Fatal("writeReportFiles() expected an error, got nil")
		}
		if !errors.Is(err, writeErr) {
			t.Errorf("writeReportFiles() error = %v, want errors.Is(err, %v)", err, writeErr)
		}
		if callCount != 2 {
			t.Errorf("writeReportFiles() made %d write calls after a failure on the second, want 2", callCount)
		}
	})
}

func TestRunGenerateCmd_ErrorPropagation(t *testing.T) {
	config := ports.RunConfig{InputFile: "input_data.csv"}

	t.Run("read failure is terminal", func(t *testing.T) {
		mockSource := &testutil.MockRecordSource{
			ReadTableFunc: func(path string) (inventory.Table, error) {
				return inventory.Table{}, summary.ErrInputNotFound
			},
		}

		err := runGenerateCmd(nil, nil, mockSource, &testutil.MockSummaryService{}, &testutil.MockReportWriter{}, config)
		if !errors.Is(err, summary.ErrInputNotFound) {
			t.Errorf("runGenerateCmd() error = %v, want errors.Is(err, summary.ErrInputNotFound)", err)
		}
	})

	t.Run("aggregation failure is terminal", func(t *testing.T) {
		mockSource := &testutil.MockRecordSource{
			ReadTableFunc: func(path string) (inventory.Table, error) {
				return inventory.Table{Columns: []string{"only"}}, nil
			},
		}
		mockService := &testutil.MockSummaryService{
			BuildReportFunc: func(table inventory.Table) (summary.Report, error) {
				return summary.Report{}, summary.ErrColumnMissing
			},
		}

		err := runGenerateCmd(nil, nil, mockSource, mockService, &testutil.MockReportWriter{}, config)
		if !errors.Is(err, summary.ErrColumnMissing) {
			t.Errorf("runGenerateCmd() error = %v, want errors.Is(err, summary.ErrColumnMissing)", err)
		}
	})

	t.Run("successful run writes into the requested directory", func(t *testing.T) {
		outputDir := filepath.Join(t.TempDir(), "reports")
		mockSource := &testutil.MockRecordSource{
			ReadTableFunc: func(path string) (inventory.Table, error) {
				return inventory.Table{Columns: []string{"Hostname"}}, nil
			},
		}
		mockService := &testutil.MockSummaryService{
			BuildReportFunc: func(table inventory.Table) (summary.Report, error) {
				return summary.Report{}, nil
			},
		}
		var gotPaths []string
		mockWriter := &testutil.MockReportWriter{
			WriteFrequencyTableFunc: func(path string, valueHeader string, table summary.FrequencyTable) error {
				gotPaths = append(gotPaths, path)
				return nil
			},
		}

		err := runGenerateCmd(nil, []string{"input.csv", outputDir}, mockSource, mockService, mockWriter, config)
		if err != nil {
			t.Fatalf("runGenerateCmd() unexpected error = %v", err)
		}
		if len(gotPaths) != 3 {
			t.Fatalf("runGenerateCmd() wrote %d files, want 3", len(gotPaths))
		}
		for _, p := range gotPaths {
			if filepath.Dir(p) != outputDir {
				t.Errorf("runGenerateCmd() wrote %q outside the requested directory %q", p, outputDir)
			}
		}
	})
}
