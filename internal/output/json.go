package output

import (
	"encoding/json"
	"strings"

	"github.com/Wy2160640/ensemblrest/registry"
)

// JSONFormatter renders endpoints and payloads as JSON.
type JSONFormatter struct {
	Indent bool
}

type endpointJSON struct {
	Name        string   `json:"name"`
	Method      string   `json:"method"`
	URL         string   `json:"url"`
	ContentType string   `json:"content_type"`
	Params      []string `json:"params"`
	Doc         string   `json:"doc,omitempty"`
}

// FormatEndpoints renders endpoint descriptors, including their mandatory
// params.
func (f *JSONFormatter) FormatEndpoints(endpoints []*registry.Endpoint) (string, error) {
	rows := make([]endpointJSON, 0, len(endpoints))
	for _, ep := range endpoints {
		if ep == nil {
			continue
		}
		params := ep.Params()
		if params == nil {
			params = []string{}
		}
		rows = append(rows, endpointJSON{
			Name:        ep.Name,
			Method:      string(ep.Method),
			URL:         ep.URL,
			ContentType: ep.ContentType,
			Params:      params,
			Doc:         ep.Doc,
		})
	}
	return f.marshal(rows)
}

// FormatPayload renders a decoded payload. Text payloads are returned as is.
func (f *JSONFormatter) FormatPayload(payload any) (string, error) {
	if text, ok := payload.(string); ok {
		return text, nil
	}
	return f.marshal(payload)
}

func (f *JSONFormatter) marshal(value any) (string, error) {
	var (
		data []byte
		err  error
	)

	if f.Indent {
		data, err = json.MarshalIndent(value, "", "  ")
	} else {
		data, err = json.Marshal(value)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// RawFormatter writes payloads without decoration: text bodies unchanged,
// JSON values compact.
type RawFormatter struct{}

// FormatEndpoints renders one operation name per line.
func (f *RawFormatter) FormatEndpoints(endpoints []*registry.Endpoint) (string, error) {
	names := make([]string, 0, len(endpoints))
	for _, ep := range endpoints {
		if ep != nil {
			names = append(names, ep.Name)
		}
	}
	return strings.Join(names, "\n"), nil
}

// FormatPayload renders payload compactly.
func (f *RawFormatter) FormatPayload(payload any) (string, error) {
	return (&JSONFormatter{}).FormatPayload(payload)
}
