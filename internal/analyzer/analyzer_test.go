package analyzer

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAnalyzeFilesFixture(t *testing.T) {
	a := New(quietLogger())

	analysis, err := a.AnalyzeFiles(filepath.Join("testdata", "items.cpp"))
	require.NoError(t, err)
	require.Len(t, analysis.Routes, 4)

	list := analysis.Routes[0]
	assert.Equal(t, "/items", list.Path)
	assert.Equal(t, []string{"get"}, list.Methods)
	assert.Equal(t, "List all items.", list.Details.Brief)
	assert.Nil(t, list.Details.Request)
	assert.Equal(t, []interface{}{
		map[string]interface{}{"id": float64(1), "name": "hammer"},
		map[string]interface{}{"id": float64(2), "name": "saw"},
	}, list.Details.Response)
	assert.Equal(t, Status{Code: "200", Description: "200 OK"}, list.Details.Status)

	create := analysis.Routes[1]
	assert.Equal(t, []string{"post"}, create.Methods)
	assert.Equal(t, map[string]interface{}{"name": "hammer"}, create.Details.Request)
	assert.Equal(t, Status{Code: "201", Description: "201 Created"}, create.Details.Status)

	update := analysis.Routes[2]
	assert.Equal(t, "/items/{id}", update.Path)
	assert.Equal(t, "/items/<int>", update.RawPath)
	assert.Equal(t, []string{"put", "delete"}, update.Methods)
	require.Len(t, update.Parameters, 1)
	assert.Equal(t, Parameter{
		Name:        "id",
		In:          "path",
		Required:    true,
		Type:        "string",
		Description: "Path parameter id",
	}, update.Parameters[0])
	assert.Equal(t, map[string]interface{}{
		"name": "saw",
		"tags": []interface{}{"tools", "wood"},
	}, update.Details.Request)

	broken := analysis.Routes[3]
	assert.Equal(t, "/broken", broken.Path)
	assert.Equal(t, []string{"post"}, broken.Methods)
	assert.Equal(t, "Broken example.", broken.Details.Brief)
	assert.Nil(t, broken.Details.Request)

	require.Len(t, analysis.Diagnostics, 1)
	diag := analysis.Diagnostics[0]
	assert.Equal(t, "/broken", diag.Path)
	assert.Equal(t, "request", diag.Field)
	assert.Equal(t, `{ "name": "unterminated }`, diag.Payload)
	assert.ErrorIs(t, diag, ErrPayloadParse)
}

func TestAnalyzeFilesMissingInput(t *testing.T) {
	a := New(quietLogger())

	_, err := a.AnalyzeFiles(filepath.Join(t.TempDir(), "missing.cpp"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read source file")
}

func TestAnalyzeFilesKeepsFileOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.cpp")
	second := filepath.Join(dir, "second.cpp")
	require.NoError(t, os.WriteFile(first, []byte(
		"/** @brief From first. */\nCROW_ROUTE(app, \"/users\").methods(crow::HTTPMethod::Get)([](){ });\n"+
			"/** @brief Only first. */\nCROW_ROUTE(app, \"/a\").methods(crow::HTTPMethod::Get)([](){ });\n",
	), 0o644))
	require.NoError(t, os.WriteFile(second, []byte(
		"/** @brief From second. */\nCROW_ROUTE(app, \"/users\").methods(crow::HTTPMethod::Get)([](){ });\n",
	), 0o644))

	analysis, err := New(quietLogger()).AnalyzeFiles(first, second)
	require.NoError(t, err)
	require.Len(t, analysis.Routes, 3)

	assert.Equal(t, first, analysis.Routes[0].Source)
	assert.Equal(t, "From first.", analysis.Routes[0].Details.Brief)
	assert.Equal(t, first, analysis.Routes[1].Source)
	assert.Equal(t, "/a", analysis.Routes[1].Path)
	assert.Equal(t, second, analysis.Routes[2].Source)
	assert.Equal(t, "From second.", analysis.Routes[2].Details.Brief)
}

func TestAnalyzeMalformedPayloadIsLoggedAndSkipped(t *testing.T) {
	var logs bytes.Buffer
	a := New(slog.New(slog.NewTextHandler(&logs, nil)))

	src := `
/**
 * @brief Broken.
 * @Request: {"name": "x}
 */
CROW_ROUTE(app, "/a").methods(crow::HTTPMethod::Post)([](){ });

/**
 * @brief Fine.
 * @Request: {"name": "y"}
 */
CROW_ROUTE(app, "/b").methods(crow::HTTPMethod::Post)([](){ });
`
	analysis := a.Analyze("inline.cpp", src)

	require.Len(t, analysis.Routes, 2)
	assert.Nil(t, analysis.Routes[0].Details.Request)
	assert.Equal(t, map[string]interface{}{"name": "y"}, analysis.Routes[1].Details.Request)

	require.Len(t, analysis.Diagnostics, 1)
	assert.Equal(t, "inline.cpp", analysis.Diagnostics[0].Source)
	assert.Contains(t, logs.String(), "failed to parse example payload")
	assert.Contains(t, logs.String(), "path=/a")
}

func TestAnalyzeRouteWithoutDocBlock(t *testing.T) {
	a := New(quietLogger())

	analysis := a.Analyze("inline.cpp", `CROW_ROUTE(app, "/health").methods(crow::HTTPMethod::Get)([](){ return 200; });`)

	require.Len(t, analysis.Routes, 1)
	route := analysis.Routes[0]
	assert.False(t, route.Doc.Found())
	assert.Equal(t, DefaultBrief, route.Details.Brief)
	assert.Equal(t, Status{Code: DefaultStatusCode, Description: DefaultStatusDescription}, route.Details.Status)
	assert.Empty(t, route.Parameters)
}

func TestAnalyzeUnknownMethodsAreDropped(t *testing.T) {
	a := New(quietLogger())

	analysis := a.Analyze("inline.cpp", `CROW_ROUTE(app, "/x").methods(crow::HTTPMethod::Head, crow::HTTPMethod::Options)([](){ });`)

	require.Len(t, analysis.Routes, 1)
	assert.Empty(t, analysis.Routes[0].Methods)
}
