package summarization

import (
	"fmt"

	"fleetsum/internal/core/domain/inventory"
	"fleetsum/internal/core/domain/summary"
	"fleetsum/internal/core/ports"
)

type service struct {
	hostname        inventory.ColumnSelector
	operatingSystem inventory.ColumnSelector
	vulnerability   inventory.ColumnSelector
}

// NewService creates a new summarization service for the three target
// fields. It panics if any selector carries a negative fallback position.
func NewService(hostname, operatingSystem, vulnerability inventory.ColumnSelector) ports.SummaryService {
	for _, sel := range []inventory.ColumnSelector{hostname, operatingSystem, vulnerability} {
		if sel.Position < 0 {
			panic(fmt.Sprintf("column selector %q has negative fallback position %d", sel.Name, sel.Position))
		}
	}
	return &service{
		hostname:        hostname,
		operatingSystem: operatingSystem,
		vulnerability:   vulnerability,
	}
}

/*
BuildReport builds the three frequency tables in one shared pass over the
records. Keys are the raw cell values, case-sensitive and untrimmed; each
table is ordered ascending by value.

Missing-value policy, applied identically to all three fields: a record
whose row is too short at a resolved column, or whose cell there is the
empty string, is skipped for that field's table only. A target column
that cannot be resolved against the header at all is a
summary.ErrColumnMissing failure.
*/
func (s *service) BuildReport(table inventory.Table) (summary.Report, error) {
	var report summary.Report

	hostIdx, err := s.hostname.Resolve(table.Columns)
	if err != nil {
		return report, fmt.Errorf("%w: hostname: %v", summary.ErrColumnMissing, err)
	}
	osIdx, err := s.operatingSystem.Resolve(table.Columns)
	if err != nil {
		return report, fmt.Errorf("%w: operating system: %v", summary.ErrColumnMissing, err)
	}
	vulnIdx, err := s.vulnerability.Resolve(table.Columns)
	if err != nil {
		return report, fmt.Errorf("%w: vulnerability: %v", summary.ErrColumnMissing, err)
	}

	hostCounts := make(map[string]int)
	osCounts := make(map[string]int)
	vulnCounts := make(map[string]int)

	for _, record := range table.Records {
		countField(hostCounts, record, hostIdx)
		countField(osCounts, record, osIdx)
		countField(vulnCounts, record, vulnIdx)
	}

	report.Hostnames = toFrequencyTable(hostCounts)
	report.OperatingSystems = toFrequencyTable(osCounts)
	report.Vulnerabilities = toFrequencyTable(vulnCounts)

	return report, nil
}
