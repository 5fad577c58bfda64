package testutil

import (
	"fleetsum/internal/core/domain/inventory"
	"fleetsum/internal/core/ports"
)

// MockRecordSource is a mock implementation of the ports.RecordSource interface.
type MockRecordSource struct {
	ReadTableFunc        func(path string) (inventory.Table, error)
	SourceIdentifierFunc func(path string) string
}

// ReadTable mocks the ReadTable method.
func (m *MockRecordSource) ReadTable(path string) (inventory.Table, error) {
	if m.ReadTableFunc != nil {
		return m.ReadTableFunc(path)
	}
	// Default behavior: return an empty table and no error.
	return inventory.Table{}, nil
}

// SourceIdentifier mocks the SourceIdentifier method.
func (m *MockRecordSource) SourceIdentifier(path string) string {
	if m.SourceIdentifierFunc != nil {
		return m.SourceIdentifierFunc(path)
	}
	// Default behavior: echo the path.
	return path
}

// Ensure MockRecordSource implements the ports.RecordSource interface.
var _ ports.RecordSource = (*MockRecordSource)(nil)
