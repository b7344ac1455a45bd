package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) commandsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List and execute Obsidian commands",
	}
	cmd.AddCommand(a.commandsListCmd(), a.commandsExecCmd())
	return cmd
}

func (a *app) commandsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all available commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			commands, err := client.Commands.List(cmd.Context())
			if err != nil {
				return err
			}

			p := a.printer(cmd)
			if p.JSON {
				return p.Print(commands)
			}
			lines := make([]string, 0, len(commands))
			for _, c := range commands {
				lines = append(lines, c.ID+": "+c.Name)
			}
			return p.Lines(lines...)
		},
	}
}

func (a *app) commandsExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "exec <commandId>",
		Short:   "Execute a command by ID",
		Example: `  obsidian commands exec editor:toggle-bold`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			id := args[0]
			if err := client.Commands.Execute(cmd.Context(), id); err != nil {
				return err
			}
			return a.printer(cmd).Success("Executed: "+id, map[string]any{"commandId": id})
		},
	}
}
