package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fleetsum/internal/adapters/reportwriting"
	"fleetsum/internal/adapters/runconfig"
	"fleetsum/internal/core/services/summarization"
	"fleetsum/internal/handlers/cli"
	"fleetsum/internal/repositories/csvfile"
)

// Version is set at build time
var Version = "dev"

// The optional run configuration lives under the user's home directory.
const (
	configDir      = ".fleetsum"
	configFilename = "config.yaml"
)

func main() {
	config := runconfig.DefaultConfig()

	configPath, err := defaultConfigPath()
	if err != nil {
		// The built-in defaults cover everything the configuration file can set.
		fmt.Fprintf(os.Stderr, "Warning: could not locate home directory: %v. Continuing with built-in defaults.\n", err)
	} else {
		configProvider, err := runconfig.NewYAMLProvider(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing configuration provider: %v\n", err)
			os.Exit(1)
		}
		config, err = configProvider.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration from %s: %v\n", configPath, err)
			os.Exit(1)
		}
	}

	recordSource := csvfile.NewRecordSource()
	summaryService := summarization.NewService(config.Hostname, config.OperatingSystem, config.Vulnerability)
	reportWriter := reportwriting.NewCSVWriter()

	rootCmd := cli.NewRootCommand(Version, recordSource, summaryService, reportWriter, config)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir, configFilename), nil
}
