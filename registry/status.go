package registry

import (
	"fmt"
	"net/http"

	"gopkg.in/yaml.v3"
)

// Status is the short name and human-readable explanation of an HTTP status
// as documented by the Ensembl REST service.
type Status struct {
	Name    string `yaml:"name" json:"name"`
	Message string `yaml:"message" json:"message"`
}

// StatusTable maps HTTP status codes to their documented meaning.
type StatusTable map[int]Status

type statusDocument struct {
	StatusCodes StatusTable `yaml:"status_codes"`
}

// LoadStatusTable parses a status code document.
func LoadStatusTable(source string, data []byte) (StatusTable, error) {
	var doc statusDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse status codes %s: %w", source, err)
	}
	if len(doc.StatusCodes) == 0 {
		return nil, fmt.Errorf("status codes %s: no entries", source)
	}
	return doc.StatusCodes, nil
}

// Message returns the documented message for code. Codes missing from the
// table fall back to the standard status text.
func (t StatusTable) Message(code int) string {
	if status, ok := t[code]; ok && status.Message != "" {
		return status.Message
	}
	if text := http.StatusText(code); text != "" {
		return text
	}
	return fmt.Sprintf("unexpected HTTP status %d", code)
}

// Name returns the short name for code.
func (t StatusTable) Name(code int) string {
	if status, ok := t[code]; ok && status.Name != "" {
		return status.Name
	}
	return http.StatusText(code)
}
