package obsidianmcp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/mcptest"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bttk/obsidian-cli/pkg/obsidian"
)

// setupMockServer creates a mock Obsidian REST API server
func setupMockServer(t *testing.T, handler http.HandlerFunc) *obsidian.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := obsidian.NewClient(ts.URL, "test-token")
	require.NoError(t, err)
	return client
}

// callTool serves a single tool over an in-process MCP transport and calls it.
func callTool(t *testing.T, tool mcp.Tool, handler server.ToolHandlerFunc, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	srv, err := mcptest.NewServer(t, server.ServerTool{Tool: tool, Handler: handler})
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	res, err := srv.Client().CallTool(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      tool.Name,
			Arguments: args,
		},
	})
	require.NoError(t, err)
	return res
}

func resultText(res *mcp.CallToolResult) string {
	var sb strings.Builder
	for _, c := range res.Content {
		if text, ok := c.(mcp.TextContent); ok {
			sb.WriteString(text.Text)
		}
	}
	return sb.String()
}

func TestGetActiveFile(t *testing.T) {
	client := setupMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/active/", r.URL.Path)
		assert.Equal(t, "application/vnd.olrapi.note+json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"content": "This is the active file content", "path": "a.md"}`)
	})

	res := callTool(t, GetActiveFileTool(), GetActiveFileHandler(client), nil)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(res), "This is the active file content")
}

func TestAppendActiveFile(t *testing.T) {
	client := setupMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/active/", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "New line", string(body))
		w.WriteHeader(http.StatusNoContent)
	})

	res := callTool(t, AppendActiveFileTool(), AppendActiveFileHandler(client), map[string]interface{}{
		"content": "New line",
	})
	assert.False(t, res.IsError)
	assert.Equal(t, "Content appended successfully", resultText(res))
}

func TestPatchActiveFile(t *testing.T) {
	client := setupMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/active/", r.URL.Path)
		assert.Equal(t, "prepend", r.Header.Get("Operation"))
		assert.Equal(t, "heading", r.Header.Get("Target-Type"))
		assert.Equal(t, "My%20Heading", r.Header.Get("Target"))
		assert.Empty(t, r.Header.Get("Trim-Target-Whitespace"))
		w.WriteHeader(http.StatusOK)
	})

	res := callTool(t, PatchActiveFileTool(), PatchActiveFileHandler(client), map[string]interface{}{
		"operation":   "prepend",
		"target_type": "heading",
		"target":      "My Heading",
		"content":     "Patched content",
	})
	assert.False(t, res.IsError)
}

func TestPatchActiveFile_InvalidOperation(t *testing.T) {
	client := setupMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	})

	res := callTool(t, PatchActiveFileTool(), PatchActiveFileHandler(client), map[string]interface{}{
		"operation":   "insert",
		"target_type": "heading",
		"target":      "H",
		"content":     "x",
	})
	assert.True(t, res.IsError)
}

func TestSearchSimple(t *testing.T) {
	client := setupMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/search/simple/?query=query&contextLength=50", r.RequestURI)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"filename": "file1.md", "score": 1.5}]`)
	})

	res := callTool(t, SearchSimpleTool(), SearchSimpleHandler(client), map[string]interface{}{
		"query":          "query",
		"context_length": 50,
	})
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(res), "file1.md")
}

func TestSearchDQL(t *testing.T) {
	client := setupMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search/", r.URL.Path)
		assert.Equal(t, "application/vnd.olrapi.dataview.dql+txt", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"filename": "project.md", "result": {"status": "active"}}]`)
	})

	res := callTool(t, SearchDQLTool(), SearchDQLHandler(client), map[string]interface{}{
		"query": `TABLE status FROM "Projects"`,
	})
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(res), "project.md")
}

func TestGetPeriodicNote(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		path string
	}{
		{name: "default daily", args: nil, path: "/periodic/daily/"},
		{name: "weekly", args: map[string]interface{}{"period": "weekly"}, path: "/periodic/weekly/"},
		{name: "dated", args: map[string]interface{}{"date": "2024-01-05"}, path: "/periodic/daily/2024/1/5/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupMockServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, `{"content": "note", "path": "p.md"}`)
			})

			res := callTool(t, GetPeriodicNoteTool(), GetPeriodicNoteHandler(client), tt.args)
			assert.False(t, res.IsError)
		})
	}
}

func TestGetPeriodicNote_InvalidPeriod(t *testing.T) {
	client := setupMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	})

	res := callTool(t, GetPeriodicNoteTool(), GetPeriodicNoteHandler(client), map[string]interface{}{
		"period": "hourly",
	})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(res), "Invalid period: hourly")
}

func TestAppendPeriodicNote(t *testing.T) {
	client := setupMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/periodic/monthly/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	res := callTool(t, AppendPeriodicNoteTool(), AppendPeriodicNoteHandler(client), map[string]interface{}{
		"period":  "monthly",
		"content": "- item",
	})
	assert.False(t, res.IsError)
}

func TestGetFile(t *testing.T) {
	client := setupMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/vault/my%2Ffile.md", r.RequestURI)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"content": "File content", "path": "my/file.md"}`)
	})

	res := callTool(t, GetFileTool(), GetFileHandler(client), map[string]interface{}{
		"path": "my/file.md",
	})
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(res), "File content")
}

func TestGetFile_NotFound(t *testing.T) {
	client := setupMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "File not found", http.StatusNotFound)
	})

	res := callTool(t, GetFileTool(), GetFileHandler(client), map[string]interface{}{
		"path": "missing.md",
	})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(res), "File not found")
}

func TestListFiles(t *testing.T) {
	client := setupMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vault/dir/", r.RequestURI)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"files": ["file1.md", "sub/"]}`)
	})

	res := callTool(t, ListFilesTool(), ListFilesHandler(client), map[string]interface{}{
		"path": "dir",
	})
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(res), "file1.md")
}

func TestCreateOrUpdateFile(t *testing.T) {
	client := setupMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/vault/new.md", r.URL.Path)
		assert.Equal(t, "text/markdown", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "New content", string(body))
		w.WriteHeader(http.StatusNoContent)
	})

	res := callTool(t, CreateOrUpdateFileTool(), CreateOrUpdateFileHandler(client), map[string]interface{}{
		"path":    "new.md",
		"content": "New content",
	})
	assert.False(t, res.IsError)
}

func TestListCommands(t *testing.T) {
	client := setupMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/commands/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"commands": [{"id": "app:reload", "name": "Reload app"}]}`)
	})

	res := callTool(t, ListCommandsTool(), ListCommandsHandler(client), nil)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(res), "app:reload")
}

func TestExecuteCommand(t *testing.T) {
	client := setupMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/commands/app%3Areload/", r.RequestURI)
		w.WriteHeader(http.StatusNoContent)
	})

	res := callTool(t, ExecuteCommandTool(), ExecuteCommandHandler(client), map[string]interface{}{
		"command_id": "app:reload",
	})
	assert.False(t, res.IsError)
	assert.Equal(t, "Executed: app:reload", resultText(res))
}

func TestOpenFile(t *testing.T) {
	client := setupMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/open/my%2Ffile.md?newLeaf=true", r.RequestURI)
		w.WriteHeader(http.StatusOK)
	})

	res := callTool(t, OpenFileTool(), OpenFileHandler(client), map[string]interface{}{
		"path":     "my/file.md",
		"new_leaf": true,
	})
	assert.False(t, res.IsError)
}

func TestRegister_Filter(t *testing.T) {
	client, err := obsidian.NewClient("https://127.0.0.1:27124", "k")
	require.NoError(t, err)

	s := server.NewMCPServer("test", "0.0.0")
	names := Register(s, client, func(name string) bool {
		return name != "obsidian_execute_command"
	})
	sort.Strings(names)

	assert.Len(t, names, len(Tools)-1)
	assert.NotContains(t, names, "obsidian_execute_command")
	assert.Contains(t, names, "obsidian_get_active_file")
}

func TestTools_NamesMatchDefinitions(t *testing.T) {
	for name, tool := range Tools {
		assert.Equal(t, name, tool.Definition().Name)
	}
}
