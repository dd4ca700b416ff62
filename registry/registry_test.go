package registry

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileTemplate(t *testing.T) {
	tpl, err := CompileTemplate("/map/{{species}}/{{asm_one}}/{{region}}/{{asm_two}}")
	require.NoError(t, err)
	require.Equal(t, []string{"species", "asm_one", "region", "asm_two"}, tpl.Params())
	require.Len(t, tpl.Segments(), 8)
	require.True(t, tpl.HasParam("region"))
	require.False(t, tpl.HasParam("id"))
}

func TestCompileTemplateNoParams(t *testing.T) {
	tpl, err := CompileTemplate("/info/ping")
	require.NoError(t, err)
	require.Empty(t, tpl.Params())

	out, err := tpl.Expand(func(string) (string, bool) { return "", false })
	require.NoError(t, err)
	require.Equal(t, "/info/ping", out)
}

func TestCompileTemplateRepeatedParam(t *testing.T) {
	tpl, err := CompileTemplate("/{{id}}/x/{{id}}")
	require.NoError(t, err)
	require.Equal(t, []string{"id"}, tpl.Params())

	out, err := tpl.Expand(func(name string) (string, bool) { return "A", name == "id" })
	require.NoError(t, err)
	require.Equal(t, "/A/x/A", out)
}

func TestCompileTemplateErrors(t *testing.T) {
	cases := map[string]string{
		"unclosed":     "/lookup/{{id",
		"empty name":   "/lookup/{{}}",
		"invalid name": "/lookup/{{1d}}",
		"dash":         "/lookup/{{gene-id}}",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := CompileTemplate(raw)
			require.Error(t, err)
		})
	}
}

func TestTemplateExpand(t *testing.T) {
	tpl := MustCompileTemplate("/lookup/{{id}}")
	values := map[string]string{"id": "ENSG001"}

	out, err := tpl.Expand(func(name string) (string, bool) {
		v, ok := values[name]
		return v, ok
	})
	require.NoError(t, err)
	require.Equal(t, "/lookup/ENSG001", out)
}

func TestTemplateExpandMissing(t *testing.T) {
	tpl := MustCompileTemplate("/homology/symbol/{{species}}/{{symbol}}")

	_, err := tpl.Expand(func(string) (string, bool) { return "", false })
	var missing *MissingParamsError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, []string{"species", "symbol"}, missing.Missing)
}

func TestNewRegistryPreservesOrder(t *testing.T) {
	reg, err := New([]*Endpoint{
		{Name: "b", Method: "get", URL: "/b/{{id}}"},
		{Name: "a", Method: "POST", URL: "/a", ContentType: "text/plain"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, reg.Names())

	b, ok := reg.Get("b")
	require.True(t, ok)
	require.Equal(t, MethodGet, b.Method)
	require.Equal(t, "application/json", b.ContentType)
	require.Equal(t, []string{"id"}, b.Params())

	a, ok := reg.Get("a")
	require.True(t, ok)
	require.Equal(t, "text/plain", a.ContentType)
}

func TestNewRegistryRejectsInvalid(t *testing.T) {
	_, err := New([]*Endpoint{{Name: "x", URL: "/x"}, {Name: "x", URL: "/y"}})
	require.ErrorContains(t, err, "duplicate endpoint name")

	_, err = New([]*Endpoint{{Name: "", URL: "/x"}})
	require.ErrorContains(t, err, "missing name")

	_, err = New([]*Endpoint{{Name: "x"}})
	require.ErrorContains(t, err, "missing url")

	_, err = New([]*Endpoint{{Name: "x", URL: "/{{"}})
	require.ErrorContains(t, err, "unclosed placeholder")
}

func TestLoad(t *testing.T) {
	data := []byte(`
endpoints:
  - name: getInfoPing
    method: GET
    url: /info/ping
    content_type: application/json
    doc: Checks if the service is alive
`)
	reg, err := Load("inline", data)
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())

	ep, ok := reg.Get("getInfoPing")
	require.True(t, ok)
	require.Equal(t, "Checks if the service is alive", ep.Doc)

	_, err = Load("broken", []byte("endpoints: ["))
	require.Error(t, err)
}

func TestDefaultRegistry(t *testing.T) {
	reg, statuses, err := LoadDefaults()
	require.NoError(t, err)
	require.Greater(t, reg.Len(), 50)

	for _, ep := range reg.List() {
		require.Contains(t, []Method{MethodGet, MethodPost}, ep.Method, ep.Name)
		require.NotEmpty(t, ep.Doc, ep.Name)
	}

	lookup, ok := reg.Get("getLookupById")
	require.True(t, ok)
	require.Equal(t, "/lookup/id/{{id}}", lookup.URL)
	require.Equal(t, []string{"id"}, lookup.Params())

	require.Contains(t, statuses, http.StatusBadRequest)
	require.Contains(t, statuses, http.StatusTooManyRequests)
}

func TestStatusTableMessage(t *testing.T) {
	table := StatusTable{
		400: {Name: "Bad Request", Message: "bad things"},
	}
	require.Equal(t, "bad things", table.Message(400))
	require.Equal(t, "Bad Request", table.Name(400))
	require.Equal(t, http.StatusText(418), table.Message(418))
	require.Equal(t, "unexpected HTTP status 599", table.Message(599))
}
