package runconfig

import (
	"fleetsum/internal/core/domain/inventory"
	"fleetsum/internal/core/ports"
)

// fileConfig mirrors ports.RunConfig with optional fields, so a partial
// configuration file only overrides what it names.
type fileConfig struct {
	InputFile       *string                   `yaml:"input_file"`
	Hostname        *inventory.ColumnSelector `yaml:"hostname"`
	OperatingSystem *inventory.ColumnSelector `yaml:"operating_system"`
	Vulnerability   *inventory.ColumnSelector `yaml:"vulnerability"`
}

// applyFileConfig overlays the fields the file actually set onto cfg.
func applyFileConfig(cfg *ports.RunConfig, file fileConfig) {
	if file.InputFile != nil && *file.InputFile != "" {
		cfg.InputFile = *file.InputFile
	}
	if file.Hostname != nil {
		cfg.Hostname = *file.Hostname
	}
	if file.OperatingSystem != nil {
		cfg.OperatingSystem = *file.OperatingSystem
	}
	if file.Vulnerability != nil {
		cfg.Vulnerability = *file.Vulnerability
	}
}
