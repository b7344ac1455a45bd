package cli

import (
	"github.com/spf13/cobra"

	"github.com/bttk/obsidian-cli/internal/version"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			p := a.printer(cmd)
			if p.JSON {
				return p.Print(info)
			}
			return p.Lines(info.String())
		},
	}
}
