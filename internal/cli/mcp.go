package cli

import (
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bttk/obsidian-cli/internal/version"
	"github.com/bttk/obsidian-cli/pkg/obsidianmcp"
)

func (a *app) mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve vault tools over MCP on stdio",
		Long: "Run a Model Context Protocol server on stdin/stdout that exposes the vault as tools.\n\n" +
			"Tools can be switched off in the config file:\n\n" +
			"  mcp:\n" +
			"    tools:\n" +
			"      obsidian_execute_command: false",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			s := server.NewMCPServer("Obsidian MCP Server", version.Version)
			names := obsidianmcp.Register(s, client, a.cfg.ToolEnabled)
			sort.Strings(names)
			a.logger.Info().Strs("tools", names).Msg("registered tools")

			var in io.Reader = cmd.InOrStdin()
			var out io.Writer = cmd.OutOrStdout()
			if a.verbose {
				in = &loggingReader{r: in, logger: a.logger}
				out = &loggingWriter{w: out, logger: a.logger}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.NewStdioServer(s).Listen(ctx, in, out)
		},
	}
}

type loggingReader struct {
	r      io.Reader
	logger zerolog.Logger
}

func (lr *loggingReader) Read(p []byte) (n int, err error) {
	n, err = lr.r.Read(p)
	if n > 0 {
		lr.logger.Debug().Msgf("IN: %q", p[:n])
	}
	return n, err
}

type loggingWriter struct {
	w      io.Writer
	logger zerolog.Logger
}

func (lw *loggingWriter) Write(p []byte) (n int, err error) {
	if len(p) < 50 {
		lw.logger.Debug().Msgf("OUT: %q", p)
	} else {
		lw.logger.Debug().Msgf("OUT: %q...", p[:50])
	}
	return lw.w.Write(p)
}
