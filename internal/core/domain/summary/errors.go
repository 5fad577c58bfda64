package summary

import "errors"

// Failure taxonomy for a report run. Every one of these is terminal: the
// run either produces all three reports or none.
var (
	// ErrInputNotFound indicates the input file does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrInputUnparseable indicates the input could not be parsed as
	// tabular data at all.
	ErrInputUnparseable = errors.New("input is not parseable as tabular data")

	// ErrColumnMissing indicates a required target column could not be
	// resolved against the input header.
	ErrColumnMissing = errors.New("required column missing from input")

	// ErrOutputDirUnwritable indicates the output destination could not
	// be created or written.
	ErrOutputDirUnwritable = errors.New("output directory is not writable")
)
