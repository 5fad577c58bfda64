package testutil

import (
	"fleetsum/internal/core/ports"
)

// MockRunConfigProvider is a mock implementation of ports.RunConfigProvider for testing.
type MockRunConfigProvider struct {
	LoadFunc func() (ports.RunConfig, error)
}

func (m *MockRunConfigProvider) Load() (ports.RunConfig, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	// Default behavior: return the zero configuration and no error.
	return ports.RunConfig{}, nil
}

// Ensure MockRunConfigProvider implements the ports.RunConfigProvider interface.
var _ ports.RunConfigProvider = (*MockRunConfigProvider)(nil)
