// Package opgen renders the named operation wrappers of the ensemblrest
// client from an endpoint registry.
package opgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/Wy2160640/ensemblrest/registry"
)

// GoName converts an operation name such as "getLookupById" into an exported
// Go identifier ("GetLookupByID").
func GoName(name string) string {
	if name == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(name)
	name = string(unicode.ToUpper(first)) + name[size:]

	var b strings.Builder
	b.Grow(len(name) + 2)
	for i := 0; i < len(name); i++ {
		if strings.HasPrefix(name[i:], "Id") && wordEnds(name, i+2) {
			b.WriteString("ID")
			i++
			continue
		}
		if strings.HasPrefix(name[i:], "Ids") && wordEnds(name, i+3) {
			b.WriteString("IDs")
			i += 2
			continue
		}
		b.WriteByte(name[i])
	}
	return b.String()
}

// wordEnds reports whether position pos of name starts a new word.
func wordEnds(name string, pos int) bool {
	if pos >= len(name) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(name[pos:])
	return unicode.IsUpper(r) || unicode.IsDigit(r)
}

// Options controls rendering.
type Options struct {
	Package string
	// Command is the generator name written into the header comment.
	Command string
}

type operationView struct {
	Name      string
	GoName    string
	Method    string
	URL       string
	DocLines  []string
	Mandatory string
}

var fileTemplate = template.Must(template.New("operations").Parse(`// Code generated by {{.Command}}. DO NOT EDIT.

package {{.Package}}

import "context"

// Operation names of the embedded endpoint registry.
const (
{{- range .Operations}}
	Op{{.GoName}} = "{{.Name}}"
{{- end}}
)

// generatedOperations lists every operation with a named method below.
var generatedOperations = []string{
{{- range .Operations}}
	Op{{.GoName}},
{{- end}}
}
{{range .Operations}}
// {{.GoName}} calls {{.Name}}.
{{- if .DocLines}}
//
{{- range .DocLines}}
// {{.}}
{{- end}}
{{- end}}
//
//	{{.Method}} {{.URL}}
{{- if .Mandatory}}
//
// Mandatory params: {{.Mandatory}}.
{{- end}}
func (c *Client) {{.GoName}}(ctx context.Context, params Params) (any, error) {
	return c.Call(ctx, Op{{.GoName}}, params)
}
{{end}}`))

// Render produces gofmt-formatted Go source for reg.
func Render(reg *registry.Registry, opts Options) ([]byte, error) {
	if reg == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if opts.Package == "" {
		opts.Package = "ensemblrest"
	}
	if opts.Command == "" {
		opts.Command = "ensemblrest-opgen"
	}

	views := make([]operationView, 0, reg.Len())
	seen := make(map[string]string, reg.Len())
	for _, ep := range reg.List() {
		goName := GoName(ep.Name)
		if prev, ok := seen[goName]; ok {
			return nil, fmt.Errorf("operations %s and %s both map to %s", prev, ep.Name, goName)
		}
		seen[goName] = ep.Name

		view := operationView{
			Name:      ep.Name,
			GoName:    goName,
			Method:    string(ep.Method),
			URL:       ep.URL,
			Mandatory: strings.Join(ep.Params(), ", "),
		}
		if doc := sentence(ep.Doc); doc != "" {
			view.DocLines = wrap(doc, 76)
		}
		views = append(views, view)
	}

	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Package    string
		Command    string
		Operations []operationView
	}{opts.Package, opts.Command, views})
	if err != nil {
		return nil, fmt.Errorf("render operations: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format operations: %w", err)
	}
	return src, nil
}

func sentence(doc string) string {
	doc = strings.Join(strings.Fields(doc), " ")
	if doc == "" {
		return ""
	}
	if !strings.HasSuffix(doc, ".") {
		doc += "."
	}
	return doc
}

func wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
