package ports

import "fleetsum/internal/core/domain/inventory"

/*
RecordSource defines the contract for reading a tabular inventory export
into memory. This is a driven port, implemented by a repository adapter
that understands a concrete file format.
*/
type RecordSource interface {
	/*
	   ReadTable reads the whole export at path. The first row becomes the
	   header and every following row a Record; rows are not required to
	   have the same width as the header.
	*/
	ReadTable(path string) (inventory.Table, error)

	// SourceIdentifier returns a user-friendly description of the input
	// location, suitable for display.
	SourceIdentifier(path string) string
}
