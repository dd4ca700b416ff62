// Package registry holds the Ensembl REST endpoint table and the HTTP status
// code table used by the client.
//
// Both tables are static YAML documents embedded in the binary. Templates are
// compiled once when a registry is loaded, so the mandatory parameters of
// every operation are known before the first request.
package registry

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Method is the HTTP method declared for an endpoint.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// Endpoint describes one named REST operation.
type Endpoint struct {
	Name        string   `yaml:"name" json:"name"`
	Method      Method   `yaml:"method" json:"method"`
	URL         string   `yaml:"url" json:"url"`
	ContentType string   `yaml:"content_type" json:"content_type"`
	Doc         string   `yaml:"doc,omitempty" json:"doc,omitempty"`
	Template    Template `yaml:"-" json:"-"`
}

// Params returns the mandatory parameters of the endpoint's URL template.
func (e *Endpoint) Params() []string {
	return e.Template.Params()
}

// Registry is an ordered, read-only set of endpoints.
type Registry struct {
	endpoints []*Endpoint
	index     map[string]*Endpoint
}

type document struct {
	Endpoints []*Endpoint `yaml:"endpoints"`
}

// Load parses a registry document.
func Load(source string, data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse registry %s: %w", source, err)
	}
	reg, err := New(doc.Endpoints)
	if err != nil {
		return nil, fmt.Errorf("load registry %s: %w", source, err)
	}
	return reg, nil
}

// New builds a registry from endpoints, compiling their templates. Order is
// preserved.
func New(endpoints []*Endpoint) (*Registry, error) {
	reg := &Registry{
		endpoints: make([]*Endpoint, 0, len(endpoints)),
		index:     make(map[string]*Endpoint, len(endpoints)),
	}
	for _, ep := range endpoints {
		if ep == nil {
			continue
		}
		name := strings.TrimSpace(ep.Name)
		if name == "" {
			return nil, fmt.Errorf("endpoint missing name")
		}
		if _, ok := reg.index[name]; ok {
			return nil, fmt.Errorf("duplicate endpoint name: %s", name)
		}
		if strings.TrimSpace(ep.URL) == "" {
			return nil, fmt.Errorf("endpoint %s missing url", name)
		}
		tpl, err := CompileTemplate(ep.URL)
		if err != nil {
			return nil, fmt.Errorf("endpoint %s: %w", name, err)
		}

		copied := *ep
		copied.Name = name
		copied.Method = Method(strings.ToUpper(strings.TrimSpace(string(ep.Method))))
		copied.ContentType = strings.TrimSpace(ep.ContentType)
		if copied.ContentType == "" {
			copied.ContentType = "application/json"
		}
		copied.Doc = strings.TrimSpace(ep.Doc)
		copied.Template = tpl

		reg.endpoints = append(reg.endpoints, &copied)
		reg.index[name] = &copied
	}
	return reg, nil
}

// Get returns the endpoint registered under name.
func (r *Registry) Get(name string) (*Endpoint, bool) {
	if r == nil {
		return nil, false
	}
	ep, ok := r.index[name]
	return ep, ok
}

// List returns endpoints in declaration order.
func (r *Registry) List() []*Endpoint {
	if r == nil {
		return nil
	}
	out := make([]*Endpoint, len(r.endpoints))
	copy(out, r.endpoints)
	return out
}

// Names returns endpoint names in declaration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.endpoints))
	for _, ep := range r.endpoints {
		names = append(names, ep.Name)
	}
	return names
}

// Len returns the number of endpoints.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.endpoints)
}
