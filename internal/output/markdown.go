package output

import (
	"strings"

	"github.com/Wy2160640/ensemblrest/registry"
)

// MarkdownFormatter renders results as markdown tables.
type MarkdownFormatter struct{}

// FormatEndpoints renders the registry listing as Markdown.
func (f *MarkdownFormatter) FormatEndpoints(endpoints []*registry.Endpoint) (string, error) {
	return endpointTable(endpoints).RenderMarkdown(), nil
}

// FormatPayload renders tabular payloads as Markdown; text is fenced.
func (f *MarkdownFormatter) FormatPayload(payload any) (string, error) {
	if text, ok := payload.(string); ok {
		return "```\n" + strings.TrimRight(text, "\n") + "\n```", nil
	}
	t, ok := payloadTable(payload)
	if !ok {
		rendered, err := (&JSONFormatter{Indent: true}).FormatPayload(payload)
		if err != nil {
			return "", err
		}
		return "```json\n" + rendered + "\n```", nil
	}
	return t.RenderMarkdown(), nil
}
