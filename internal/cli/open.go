package cli

import "github.com/spf13/cobra"

func (a *app) openCmd() *cobra.Command {
	var newLeaf bool
	cmd := &cobra.Command{
		Use:   "open <path>",
		Short: "Open a file in Obsidian",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			path := args[0]
			if err := client.Open.File(cmd.Context(), path, newLeaf); err != nil {
				return err
			}
			return a.printer(cmd).Success("Opened: "+path, map[string]any{"path": path})
		},
	}
	cmd.Flags().BoolVar(&newLeaf, "new-leaf", false, "Open in a new leaf/tab")
	return cmd
}
