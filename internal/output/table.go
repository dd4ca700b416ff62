package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Wy2160640/ensemblrest/registry"
)

// TableFormatter renders results as an ASCII table.
type TableFormatter struct{}

// FormatEndpoints renders the registry listing as a table.
func (f *TableFormatter) FormatEndpoints(endpoints []*registry.Endpoint) (string, error) {
	t := endpointTable(endpoints)
	t.SetStyle(table.StyleRounded)
	return t.Render(), nil
}

// FormatPayload renders objects and arrays of objects as tables. Text
// payloads and values with no tabular shape fall back to indented JSON.
func (f *TableFormatter) FormatPayload(payload any) (string, error) {
	if text, ok := payload.(string); ok {
		return text, nil
	}
	t, ok := payloadTable(payload)
	if !ok {
		return (&JSONFormatter{Indent: true}).FormatPayload(payload)
	}
	t.SetStyle(table.StyleRounded)
	return t.Render(), nil
}

func endpointTable(endpoints []*registry.Endpoint) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Operation", "Method", "URL", "Params", "Content-Type"})

	count := 0
	for _, ep := range endpoints {
		if ep == nil {
			continue
		}
		t.AppendRow(table.Row{
			ep.Name,
			string(ep.Method),
			ep.URL,
			strings.Join(ep.Params(), ", "),
			ep.ContentType,
		})
		count++
	}

	t.AppendFooter(table.Row{fmt.Sprintf("%d operations", count), "", "", "", ""})
	return t
}

func payloadTable(payload any) (table.Writer, bool) {
	switch v := payload.(type) {
	case map[string]any:
		t := table.NewWriter()
		t.AppendHeader(table.Row{"Field", "Value"})
		for _, key := range sortedKeys(v) {
			t.AppendRow(table.Row{key, cell(v[key])})
		}
		return t, true
	case []any:
		if len(v) == 0 {
			return nil, false
		}
		if columns, ok := objectColumns(v); ok {
			t := table.NewWriter()
			header := make(table.Row, len(columns))
			for i, column := range columns {
				header[i] = column
			}
			t.AppendHeader(header)
			for _, item := range v {
				obj := item.(map[string]any)
				row := make(table.Row, len(columns))
				for i, column := range columns {
					row[i] = cell(obj[column])
				}
				t.AppendRow(row)
			}
			return t, true
		}
		t := table.NewWriter()
		t.AppendHeader(table.Row{"Value"})
		for _, item := range v {
			t.AppendRow(table.Row{cell(item)})
		}
		return t, true
	default:
		return nil, false
	}
}

// objectColumns returns the sorted union of keys when every item is an object.
func objectColumns(items []any) ([]string, bool) {
	seen := make(map[string]struct{})
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		for key := range obj {
			seen[key] = struct{}{}
		}
	}
	columns := make([]string, 0, len(seen))
	for key := range seen {
		columns = append(columns, key)
	}
	sort.Strings(columns)
	return columns, true
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func cell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	}
}
