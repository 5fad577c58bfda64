package testutil

import (
	"fleetsum/internal/core/domain/inventory"
	"fleetsum/internal/core/domain/summary"
	"fleetsum/internal/core/ports"
)

// MockSummaryService is a mock implementation of the ports.SummaryService interface.
type MockSummaryService struct {
	BuildReportFunc func(table inventory.Table) (summary.Report, error)
}

// BuildReport mocks the BuildReport method.
func (m *MockSummaryService) BuildReport(table inventory.Table) (summary.Report, error) {
	if m.BuildReportFunc != nil {
		return m.BuildReportFunc(table)
	}
	// Default behavior: return an empty report and no error.
	return summary.Report{}, nil
}

// Ensure MockSummaryService implements the ports.SummaryService interface.
var _ ports.SummaryService = (*MockSummaryService)(nil)
