// Package cli implements the obsidian command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bttk/obsidian-cli/internal/update"
	"github.com/bttk/obsidian-cli/internal/version"
	"github.com/bttk/obsidian-cli/pkg/config"
	"github.com/bttk/obsidian-cli/pkg/obsidian"
	"github.com/bttk/obsidian-cli/pkg/output"
)

// releaseChecker reports whether a newer release than the running one exists.
type releaseChecker interface {
	Latest(ctx context.Context) (string, bool)
}

// installer replaces the running binary with the latest release.
type installer interface {
	Run(ctx context.Context, stdout, stderr io.Writer) error
}

// app holds the state shared by every command of one invocation.
type app struct {
	jsonOutput bool
	verbose    bool
	configPath string

	cfg     *config.Config
	logger  zerolog.Logger
	checker releaseChecker
	runner  installer
}

// NewRootCmd builds the complete command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{
		checker: update.NewChecker(version.Version),
		runner:  update.NewRunner(),
	})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "obsidian",
		Short: "CLI for Obsidian using Local REST API",
		Long: "Read, write and search notes in a running Obsidian instance through the Local REST API plugin.\n\n" +
			"The API key is read from OBSIDIAN_API_KEY and the endpoint from OBSIDIAN_API_URL " +
			"(default " + config.DefaultAPIURL + ").",
		Version:           version.Version,
		PersistentPreRunE: a.initialize,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Output as JSON")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log requests to stderr")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default: $XDG_CONFIG_HOME/"+config.DefaultConfigFile+")")

	root.AddCommand(
		a.statusCmd(),
		a.noteCmd(),
		a.activeCmd(),
		a.dailyCmd(),
		a.periodicCmd(),
		a.searchCmd(),
		a.commandsCmd(),
		a.openCmd(),
		a.vaultCmd(),
		a.updateCmd(),
		a.versionCmd(),
		a.mcpCmd(),
	)
	return root
}

// Execute runs the command tree against os.Args and returns the process exit code.
func Execute() int {
	return run(NewRootCmd(), os.Args[1:])
}

func run(root *cobra.Command, args []string) int {
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return output.PrintError(root.ErrOrStderr(), err)
	}
	return 0
}

func (a *app) initialize(cmd *cobra.Command, args []string) error {
	level := zerolog.WarnLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		TimeFormat: time.Stamp,
	}).With().Timestamp().Logger().Level(level)
	return nil
}

// client loads the configuration and builds an API client from it. Config
// errors surface here, before any request is sent.
func (a *app) client() (*obsidian.Client, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	a.cfg = cfg

	if !a.verbose {
		if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			a.logger = a.logger.Level(level)
		} else {
			a.logger.Warn().Str("configured", cfg.LogLevel).Msg("invalid log level, using warn")
		}
	}

	return obsidian.NewClient(cfg.APIURL, cfg.APIKey,
		obsidian.WithLogger(a.logger),
		obsidian.WithUserAgent("obsidian-cli/"+version.Version),
	)
}

func (a *app) printer(cmd *cobra.Command) *output.Printer {
	return &output.Printer{Out: cmd.OutOrStdout(), JSON: a.jsonOutput}
}

// readContent returns the positional content argument, replaced by the
// contents of file when one is given.
func readContent(args []string, file string) (string, error) {
	var body string
	if len(args) > 0 {
		body = args[0]
	}
	if file == "" {
		return body, nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", file, err)
	}
	return string(b), nil
}
