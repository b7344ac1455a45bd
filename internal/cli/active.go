package cli

import "github.com/spf13/cobra"

func (a *app) activeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "active",
		Short: "Manage the currently active file in Obsidian",
		Example: `  # Print the file open in the editor
  obsidian active read

  # Add a task under the "Today" heading
  obsidian active patch --target Today --type heading -- "- [ ] review"`,
	}
	cmd.AddCommand(noteVerbs{app: a, label: "active file", resolve: activeOps}.commands()...)
	return cmd
}
