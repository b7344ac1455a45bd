// Package obsidianmcp exposes the Obsidian client as MCP tools.
package obsidianmcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bttk/obsidian-cli/pkg/obsidian"
)

// Helper to get arguments map
func getArgs(req mcp.CallToolRequest) map[string]interface{} {
	args, ok := req.Params.Arguments.(map[string]interface{})
	if !ok {
		return make(map[string]interface{})
	}
	return args
}

func stringArg(args map[string]interface{}, name string) string {
	s, _ := args[name].(string)
	return s
}

// periodArgs reads the optional period and date arguments shared by the
// periodic note tools.
func periodArgs(args map[string]interface{}) (obsidian.Period, *obsidian.Date, error) {
	period := obsidian.PeriodDaily
	if p := stringArg(args, "period"); p != "" {
		var err error
		if period, err = obsidian.ParsePeriod(p); err != nil {
			return "", nil, err
		}
	}
	ds := stringArg(args, "date")
	if ds == "" {
		return period, nil, nil
	}
	d, err := obsidian.ParseDate(ds)
	if err != nil {
		return "", nil, err
	}
	return period, &d, nil
}

func patchArgs(args map[string]interface{}) (obsidian.PatchOptions, error) {
	op, err := obsidian.ParsePatchOperation(stringArg(args, "operation"))
	if err != nil {
		return obsidian.PatchOptions{}, err
	}
	tt, err := obsidian.ParseTargetType(stringArg(args, "target_type"))
	if err != nil {
		return obsidian.PatchOptions{}, err
	}
	return obsidian.PatchOptions{
		Operation:  op,
		TargetType: tt,
		Target:     stringArg(args, "target"),
		Delimiter:  stringArg(args, "delimiter"),
	}, nil
}

// Tool pairs a tool definition with its handler constructor.
type Tool struct {
	Definition func() mcp.Tool
	Handler    func(*obsidian.Client) server.ToolHandlerFunc
}

// Tools lists every tool this package provides, keyed by tool name.
var Tools = map[string]Tool{
	"obsidian_get_active_file":       {GetActiveFileTool, GetActiveFileHandler},
	"obsidian_append_active_file":    {AppendActiveFileTool, AppendActiveFileHandler},
	"obsidian_patch_active_file":     {PatchActiveFileTool, PatchActiveFileHandler},
	"obsidian_search_simple":         {SearchSimpleTool, SearchSimpleHandler},
	"obsidian_search_dql":            {SearchDQLTool, SearchDQLHandler},
	"obsidian_get_periodic_note":     {GetPeriodicNoteTool, GetPeriodicNoteHandler},
	"obsidian_append_periodic_note":  {AppendPeriodicNoteTool, AppendPeriodicNoteHandler},
	"obsidian_get_file":              {GetFileTool, GetFileHandler},
	"obsidian_list_files":            {ListFilesTool, ListFilesHandler},
	"obsidian_create_or_update_file": {CreateOrUpdateFileTool, CreateOrUpdateFileHandler},
	"obsidian_list_commands":         {ListCommandsTool, ListCommandsHandler},
	"obsidian_execute_command":       {ExecuteCommandTool, ExecuteCommandHandler},
	"obsidian_open_file":             {OpenFileTool, OpenFileHandler},
}

// Register adds every tool for which enabled returns true and returns the
// names that were registered.
func Register(s *server.MCPServer, client *obsidian.Client, enabled func(name string) bool) []string {
	var names []string
	for name, t := range Tools {
		if enabled != nil && !enabled(name) {
			continue
		}
		s.AddTool(t.Definition(), t.Handler(client))
		names = append(names, name)
	}
	return names
}

// GetActiveFileTool returns the tool definition
func GetActiveFileTool() mcp.Tool {
	return mcp.NewTool("obsidian_get_active_file",
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDescription("Get the content of the currently active file in Obsidian"),
	)
}

// GetActiveFileHandler returns the tool handler
func GetActiveFileHandler(client *obsidian.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content, err := client.ActiveFile.GetNote(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get active file: %v", err)), nil
		}
		return mcp.NewToolResultJSON(content)
	}
}

// AppendActiveFileTool returns the tool definition
func AppendActiveFileTool() mcp.Tool {
	return mcp.NewTool("obsidian_append_active_file",
		mcp.WithDescription("Append content to the currently active file"),
		mcp.WithString("content", mcp.Required(), mcp.Description("Content to append")),
	)
}

// AppendActiveFileHandler returns the tool handler
func AppendActiveFileHandler(client *obsidian.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := getArgs(request)
		content, ok := args["content"].(string)
		if !ok {
			return mcp.NewToolResultError("content must be a string"), nil
		}

		if err := client.ActiveFile.Append(ctx, content); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to append to active file: %v", err)), nil
		}
		return mcp.NewToolResultText("Content appended successfully"), nil
	}
}

// PatchActiveFileTool returns the tool definition
func PatchActiveFileTool() mcp.Tool {
	return mcp.NewTool("obsidian_patch_active_file",
		mcp.WithDescription("Insert content into the currently active file relative to a heading, block, or frontmatter field"),
		mcp.WithString("operation", mcp.Required(), mcp.Description("Operation: append, prepend, replace")),
		mcp.WithString("target_type", mcp.Required(), mcp.Description("Target type: heading, block, frontmatter")),
		mcp.WithString("target", mcp.Required(), mcp.Description("Target selector (e.g., heading name)")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Content to patch")),
		mcp.WithString("delimiter", mcp.Description("Delimiter between nested heading names (default ::)")),
	)
}

// PatchActiveFileHandler returns the tool handler
func PatchActiveFileHandler(client *obsidian.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := getArgs(request)
		opts, err := patchArgs(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := client.ActiveFile.Patch(ctx, stringArg(args, "content"), opts); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to patch active file: %v", err)), nil
		}
		return mcp.NewToolResultText("File patched successfully"), nil
	}
}

// SearchSimpleTool returns the tool definition
func SearchSimpleTool() mcp.Tool {
	return mcp.NewTool("obsidian_search_simple",
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDescription("Search the vault for files matching a query"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
		mcp.WithNumber("context_length", mcp.Description("Length of context to return (default 100)")),
	)
}

// SearchSimpleHandler returns the tool handler
func SearchSimpleHandler(client *obsidian.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := getArgs(request)
		contextLen, _ := args["context_length"].(float64)

		results, err := client.Search.Simple(ctx, stringArg(args, "query"), int(contextLen))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to search: %v", err)), nil
		}

		return mcp.NewToolResultJSON(map[string]interface{}{
			"results": results,
		})
	}
}

// SearchDQLTool returns the tool definition
func SearchDQLTool() mcp.Tool {
	return mcp.NewTool("obsidian_search_dql",
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDescription("Search the vault with a Dataview DQL query, e.g. TABLE file.mtime FROM \"Projects\""),
		mcp.WithString("query", mcp.Required(), mcp.Description("DQL query")),
	)
}

// SearchDQLHandler returns the tool handler
func SearchDQLHandler(client *obsidian.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := getArgs(request)
		results, err := client.Search.Dataview(ctx, stringArg(args, "query"))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to search: %v", err)), nil
		}

		return mcp.NewToolResultJSON(map[string]interface{}{
			"results": results,
		})
	}
}

// GetPeriodicNoteTool returns the tool definition
func GetPeriodicNoteTool() mcp.Tool {
	return mcp.NewTool("obsidian_get_periodic_note",
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDescription("Get a periodic note (today's daily note by default)"),
		mcp.WithString("period", mcp.Description("daily, weekly, monthly, quarterly or yearly (default daily)")),
		mcp.WithString("date", mcp.Description("Specific date (YYYY-MM-DD); current period if omitted")),
	)
}

// GetPeriodicNoteHandler returns the tool handler
func GetPeriodicNoteHandler(client *obsidian.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		period, date, err := periodArgs(getArgs(request))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		note, err := client.Periodic.GetNote(ctx, period, date)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get %s note: %v", period, err)), nil
		}
		return mcp.NewToolResultJSON(note)
	}
}

// AppendPeriodicNoteTool returns the tool definition
func AppendPeriodicNoteTool() mcp.Tool {
	return mcp.NewTool("obsidian_append_periodic_note",
		mcp.WithDescription("Append content to a periodic note (today's daily note by default)"),
		mcp.WithString("content", mcp.Required(), mcp.Description("Content to append")),
		mcp.WithString("period", mcp.Description("daily, weekly, monthly, quarterly or yearly (default daily)")),
		mcp.WithString("date", mcp.Description("Specific date (YYYY-MM-DD); current period if omitted")),
	)
}

// AppendPeriodicNoteHandler returns the tool handler
func AppendPeriodicNoteHandler(client *obsidian.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := getArgs(request)
		period, date, err := periodArgs(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := client.Periodic.Append(ctx, period, stringArg(args, "content"), date); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to append to %s note: %v", period, err)), nil
		}
		return mcp.NewToolResultText("Content appended successfully"), nil
	}
}

// GetFileTool returns the tool definition
func GetFileTool() mcp.Tool {
	return mcp.NewTool("obsidian_get_file",
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDescription("Get the content of a specific file in the vault"),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to the file")),
	)
}

// GetFileHandler returns the tool handler
func GetFileHandler(client *obsidian.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := getArgs(request)
		content, err := client.Vault.GetNote(ctx, stringArg(args, "path"))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to get file: %v", err)), nil
		}
		return mcp.NewToolResultJSON(content)
	}
}

// ListFilesTool returns the tool definition
func ListFilesTool() mcp.Tool {
	return mcp.NewTool("obsidian_list_files",
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDescription("List files in a directory"),
		mcp.WithString("path", mcp.Description("Directory path (empty for root)")),
	)
}

// ListFilesHandler returns the tool handler
func ListFilesHandler(client *obsidian.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := getArgs(request)
		files, err := client.Vault.List(ctx, stringArg(args, "path"))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list files: %v", err)), nil
		}

		return mcp.NewToolResultJSON(map[string]interface{}{
			"files": files,
		})
	}
}

// CreateOrUpdateFileTool returns the tool definition
func CreateOrUpdateFileTool() mcp.Tool {
	return mcp.NewTool("obsidian_create_or_update_file",
		mcp.WithDescription("Create a new file or update an existing one"),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to the file")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Content of the file")),
	)
}

// CreateOrUpdateFileHandler returns the tool handler
func CreateOrUpdateFileHandler(client *obsidian.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := getArgs(request)
		err := client.Vault.Create(ctx, stringArg(args, "path"), stringArg(args, "content"))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to create/update file: %v", err)), nil
		}
		return mcp.NewToolResultText("File created/updated successfully"), nil
	}
}

// ListCommandsTool returns the tool definition
func ListCommandsTool() mcp.Tool {
	return mcp.NewTool("obsidian_list_commands",
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDescription("List the commands Obsidian can execute"),
	)
}

// ListCommandsHandler returns the tool handler
func ListCommandsHandler(client *obsidian.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		commands, err := client.Commands.List(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to list commands: %v", err)), nil
		}
		return mcp.NewToolResultJSON(map[string]interface{}{
			"commands": commands,
		})
	}
}

// ExecuteCommandTool returns the tool definition
func ExecuteCommandTool() mcp.Tool {
	return mcp.NewTool("obsidian_execute_command",
		mcp.WithDescription("Execute an Obsidian command by ID"),
		mcp.WithString("command_id", mcp.Required(), mcp.Description("Command ID, e.g. editor:toggle-bold")),
	)
}

// ExecuteCommandHandler returns the tool handler
func ExecuteCommandHandler(client *obsidian.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := getArgs(request)
		id := stringArg(args, "command_id")
		if err := client.Commands.Execute(ctx, id); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to execute command: %v", err)), nil
		}
		return mcp.NewToolResultText("Executed: " + id), nil
	}
}

// OpenFileTool returns the tool definition
func OpenFileTool() mcp.Tool {
	return mcp.NewTool("obsidian_open_file",
		mcp.WithDescription("Open a file in Obsidian UI"),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to the file")),
		mcp.WithBoolean("new_leaf", mcp.Description("Open in a new leaf (tab)")),
	)
}

// OpenFileHandler returns the tool handler
func OpenFileHandler(client *obsidian.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := getArgs(request)
		newLeaf, _ := args["new_leaf"].(bool)

		err := client.Open.File(ctx, stringArg(args, "path"), newLeaf)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to open file: %v", err)), nil
		}
		return mcp.NewToolResultText("File opened successfully"), nil
	}
}
