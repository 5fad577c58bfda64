package runconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"fleetsum/internal/core/domain/inventory"
	"fleetsum/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// defaultInputFile is used when neither the configuration file nor the
// command line names an input.
const defaultInputFile = "input_data.csv"

// Positional fallbacks match the documented export layout: hostname in
// column 2, operating system in column 4, vulnerability in column 7
// (0-indexed).
var (
	defaultHostname        = inventory.ColumnSelector{Name: "Hostname", Position: 2}
	defaultOperatingSystem = inventory.ColumnSelector{Name: "Operating System", Position: 4}
	defaultVulnerability   = inventory.ColumnSelector{Name: "Vulnerability", Position: 7}
)

// YAMLProvider implements the RunConfigProvider interface
// by reading run configuration from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML configuration file; the file is
// allowed to be absent.
func NewYAMLProvider(filePath string) (ports.RunConfigProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// DefaultConfig returns the built-in run configuration.
func DefaultConfig() ports.RunConfig {
	return ports.RunConfig{
		InputFile:       defaultInputFile,
		Hostname:        defaultHostname,
		OperatingSystem: defaultOperatingSystem,
		Vulnerability:   defaultVulnerability,
	}
}

// Load reads and parses the configured YAML file.
// A missing or empty file yields the defaults; fields the file leaves
// unset are defaulted individually.
func (p *YAMLProvider) Load() (ports.RunConfig, error) {
	cfg := DefaultConfig()

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// File not existing is not an error for this provider; it means defaults.
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read configuration file %s: %w", p.filePath, err)
	}

	// If the file is empty, os.ReadFile returns an empty slice and no error.
	if len(yamlFile) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	var fileCfg fileConfig
	if err = decoder.Decode(&fileCfg); err != nil {
		// A file holding only comments or "---" decodes to nothing and
		// surfaces as EOF; treat it like an absent file.
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to unmarshal configuration from %s: %w", p.filePath, err)
	}

	applyFileConfig(&cfg, fileCfg)
	return cfg, nil
}
