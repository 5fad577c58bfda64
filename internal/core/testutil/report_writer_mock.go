package testutil

import (
	"errors"

	"fleetsum/internal/core/domain/summary"
	"fleetsum/internal/core/ports"
)

// MockReportWriter is a mock implementation of ports.ReportWriter for testing.
type MockReportWriter struct {
	WriteFrequencyTableFunc func(path string, valueHeader string, table summary.FrequencyTable) error
}

func (m *MockReportWriter) WriteFrequencyTable(path string, valueHeader string, table summary.FrequencyTable) error {
	if m.WriteFrequencyTableFunc != nil {
		return m.WriteFrequencyTableFunc(path, valueHeader, table)
	}
	return errors.New("MockReportWriter: WriteFrequencyTableFunc not implemented")
}

// Ensure MockReportWriter implements the ports.ReportWriter interface.
var _ ports.ReportWriter = (*MockReportWriter)(nil)
