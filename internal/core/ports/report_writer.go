package ports

import "fleetsum/internal/core/domain/summary"

/*
ReportWriter defines the contract for persisting one frequency table.
This is a driven port, typically implemented by an adapter that writes a
concrete delimited format.
*/
type ReportWriter interface {
	/*
	   WriteFrequencyTable writes table to path as two columns, the first
	   named valueHeader and the second holding the integer counts. Rows
	   are written in table order.
	*/
	WriteFrequencyTable(path string, valueHeader string, table summary.FrequencyTable) error
}
