package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Update obsidian-cli to the latest version",
		Long:  "Update obsidian-cli by downloading and running the published install script.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.printer(cmd)
			if err := p.Lines("Updating obsidian-cli...\n"); err != nil {
				return err
			}
			if err := a.runner.Run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
				return err
			}
			return p.Lines("\nUpdate complete!")
		},
	}
}
