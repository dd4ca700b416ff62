package registry

import (
	_ "embed"
	"sync"
)

//go:embed endpoints.yaml
var endpointsYAML []byte

//go:embed status_codes.yaml
var statusCodesYAML []byte

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultStatuses StatusTable
	defaultErr      error
)

func loadDefaults() {
	defaultRegistry, defaultErr = Load("endpoints.yaml", endpointsYAML)
	if defaultErr != nil {
		return
	}
	defaultStatuses, defaultErr = LoadStatusTable("status_codes.yaml", statusCodesYAML)
}

// LoadDefaults returns the embedded endpoint registry and status table.
func LoadDefaults() (*Registry, StatusTable, error) {
	defaultOnce.Do(loadDefaults)
	return defaultRegistry, defaultStatuses, defaultErr
}

// Default returns the embedded endpoint registry. It panics if the embedded
// document is invalid.
func Default() *Registry {
	reg, _, err := LoadDefaults()
	if err != nil {
		panic(err)
	}
	return reg
}

// DefaultStatuses returns the embedded status table. It panics if the embedded
// document is invalid.
func DefaultStatuses() StatusTable {
	_, statuses, err := LoadDefaults()
	if err != nil {
		panic(err)
	}
	return statuses
}
