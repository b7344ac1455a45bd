package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) vaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Browse vault files and directories",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list [path]",
		Short: "List files in a directory",
		Long:  "List files in a directory. Directories are shown with a trailing slash.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			var dir string
			if len(args) > 0 {
				dir = strings.TrimSuffix(args[0], "/")
			}
			files, err := client.Vault.List(cmd.Context(), dir)
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			if p.JSON {
				return p.Print(files)
			}
			return p.Lines(files...)
		},
	})
	return cmd
}
