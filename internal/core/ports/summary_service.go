package ports

import (
	"fleetsum/internal/core/domain/inventory"
	"fleetsum/internal/core/domain/summary"
)

// SummaryService defines the contract for deriving the three frequency
// tables from a parsed inventory table.
type SummaryService interface {
	// BuildReport counts the distinct values of the three target fields
	// across all records. It is a pure function of its input: no I/O and
	// no side effects.
	BuildReport(table inventory.Table) (summary.Report, error)
}
