package ports

import "fleetsum/internal/core/domain/inventory"

// RunConfig holds the tool's run settings: the input file used when none
// is given on the command line, and the selectors for the three target
// columns of the export.
type RunConfig struct {
	InputFile       string
	Hostname        inventory.ColumnSelector
	OperatingSystem inventory.ColumnSelector
	Vulnerability   inventory.ColumnSelector
}

// RunConfigProvider defines the interface for sourcing run configuration,
// like a configuration file.
type RunConfigProvider interface {
	// Load returns the effective run configuration. Implementations fall
	// back to built-in defaults when no configuration is present.
	Load() (RunConfig, error)
}
