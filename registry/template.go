package registry

import (
	"fmt"
	"strings"
)

const (
	placeholderOpen  = "{{"
	placeholderClose = "}}"
)

// Segment is one piece of a compiled URL template: either literal text or a
// named placeholder.
type Segment struct {
	Literal string
	Param   string
}

// IsParam reports whether the segment is a placeholder.
func (s Segment) IsParam() bool {
	return s.Param != ""
}

// Template is a URL template compiled into literal and placeholder segments.
type Template struct {
	raw      string
	segments []Segment
	params   []string
}

// MissingParamsError lists placeholders that had no value during expansion.
type MissingParamsError struct {
	Missing []string
}

func (e *MissingParamsError) Error() string {
	return fmt.Sprintf("missing template params: %s", strings.Join(e.Missing, ", "))
}

// CompileTemplate parses a template such as "/lookup/id/{{id}}".
//
// Placeholder names must be identifiers ([A-Za-z_][A-Za-z0-9_]*). An unclosed
// "{{" or an empty/invalid name is an error.
func CompileTemplate(raw string) (Template, error) {
	tpl := Template{raw: raw}
	seen := make(map[string]bool)

	rest := raw
	for rest != "" {
		open := strings.Index(rest, placeholderOpen)
		if open < 0 {
			tpl.segments = append(tpl.segments, Segment{Literal: rest})
			break
		}
		if open > 0 {
			tpl.segments = append(tpl.segments, Segment{Literal: rest[:open]})
		}
		rest = rest[open+len(placeholderOpen):]

		end := strings.Index(rest, placeholderClose)
		if end < 0 {
			return Template{}, fmt.Errorf("template %q: unclosed placeholder", raw)
		}
		name := rest[:end]
		if !isIdentifier(name) {
			return Template{}, fmt.Errorf("template %q: invalid placeholder name %q", raw, name)
		}
		tpl.segments = append(tpl.segments, Segment{Param: name})
		if !seen[name] {
			seen[name] = true
			tpl.params = append(tpl.params, name)
		}
		rest = rest[end+len(placeholderClose):]
	}

	return tpl, nil
}

// MustCompileTemplate is like CompileTemplate but panics on error.
func MustCompileTemplate(raw string) Template {
	tpl, err := CompileTemplate(raw)
	if err != nil {
		panic(err)
	}
	return tpl
}

// String returns the template source.
func (t Template) String() string {
	return t.raw
}

// Segments returns a copy of the compiled segments.
func (t Template) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// Params returns the placeholder names in order of first appearance.
func (t Template) Params() []string {
	out := make([]string, len(t.params))
	copy(out, t.params)
	return out
}

// HasParam reports whether name is one of the template's placeholders.
func (t Template) HasParam(name string) bool {
	for _, p := range t.params {
		if p == name {
			return true
		}
	}
	return false
}

// Missing returns the placeholders for which lookup reports no value.
func (t Template) Missing(lookup func(name string) (string, bool)) []string {
	var missing []string
	for _, p := range t.params {
		if _, ok := lookup(p); !ok {
			missing = append(missing, p)
		}
	}
	return missing
}

// Expand substitutes every placeholder with the value returned by lookup.
// Values are inserted verbatim.
func (t Template) Expand(lookup func(name string) (string, bool)) (string, error) {
	if missing := t.Missing(lookup); len(missing) > 0 {
		return "", &MissingParamsError{Missing: missing}
	}

	var b strings.Builder
	b.Grow(len(t.raw))
	for _, seg := range t.segments {
		if !seg.IsParam() {
			b.WriteString(seg.Literal)
			continue
		}
		value, _ := lookup(seg.Param)
		b.WriteString(value)
	}
	return b.String(), nil
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
