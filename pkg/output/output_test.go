package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_JSON(t *testing.T) {
	data := map[string]any{"title": "Test", "content": "Hello"}
	got, err := Format(data, true)
	require.NoError(t, err)

	want, _ := json.MarshalIndent(data, "", "  ")
	assert.Equal(t, string(want), got)
}

func TestFormat_JSONString(t *testing.T) {
	got, err := Format("# Heading\n", true)
	require.NoError(t, err)
	assert.Equal(t, `"# Heading\n"`, got)
}

func TestFormat_String(t *testing.T) {
	got, err := Format("Hello world", false)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", got)
}

func TestFormat_Object(t *testing.T) {
	got, err := Format(map[string]any{"name": "test.md", "size": 100}, false)
	require.NoError(t, err)
	assert.Contains(t, got, "name: test.md")
	assert.Contains(t, got, "size: 100")
}

func TestFormat_StructFieldOrder(t *testing.T) {
	type note struct {
		Content string   `json:"content"`
		Path    string   `json:"path"`
		Tags    []string `json:"tags"`
		Draft   string   `json:"draft"`
	}
	got, err := Format(note{Content: "line one\nline two", Path: "a.md", Tags: []string{"x"}, Draft: "true"}, false)
	require.NoError(t, err)

	assert.Contains(t, got, "line one\n  line two")
	assert.Contains(t, got, "path: a.md")
	assert.Contains(t, got, "- x")
	assert.Contains(t, got, `draft: "true"`)
	assert.Less(t, strings.Index(got, "content:"), strings.Index(got, "path:"))
	assert.Less(t, strings.Index(got, "path:"), strings.Index(got, "tags:"))
}

func TestFormat_StringList(t *testing.T) {
	got, err := Format([]string{"file1.md", "file2.md", "file3.md"}, false)
	require.NoError(t, err)
	assert.Equal(t, "file1.md\nfile2.md\nfile3.md", got)
}

func TestPrinter_Success(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf}
	require.NoError(t, p.Success("Created: a.md", map[string]any{"path": "a.md"}))
	assert.Equal(t, "Created: a.md\n", buf.String())

	buf.Reset()
	p.JSON = true
	require.NoError(t, p.Success("Created: a.md", map[string]any{"path": "a.md"}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]any{"success": true, "path": "a.md"}, got)
}

func TestHandleError(t *testing.T) {
	res := HandleError(&CLIError{Message: "File not found", ExitCode: 2})
	assert.Equal(t, ErrorResult{Message: "File not found", ExitCode: 2}, res)

	res = HandleError(NewCLIError("Custom error"))
	assert.Equal(t, ErrorResult{Message: "Custom error", ExitCode: 1}, res)

	res = HandleError(fmt.Errorf("wrapped: %w", NewCLIError("inner")))
	assert.Equal(t, "inner", res.Message)

	res = HandleError(errors.New("Standard error"))
	assert.Equal(t, ErrorResult{Message: "Standard error", ExitCode: 1}, res)

	res = HandleError(nil)
	assert.Equal(t, ErrorResult{Message: "An unexpected error occurred", ExitCode: 1}, res)
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	code := PrintError(&buf, errors.New("boom"))
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "✖")
	assert.Contains(t, buf.String(), "boom")
}
