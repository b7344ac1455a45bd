package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bttk/obsidian-cli/pkg/obsidian"
)

func (a *app) searchCmd() *cobra.Command {
	var dql bool
	var contextLength int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search for content in the vault",
		Example: `  # Full-text search with a short context window
  obsidian search "meeting notes" --context 40

  # Dataview query
  obsidian search 'TABLE file.mtime FROM "Projects"' --dql`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if contextLength < 1 {
				return fmt.Errorf("invalid context length %d: must be at least 1", contextLength)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			p := a.printer(cmd)

			if dql {
				rows, err := client.Search.Dataview(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return p.Print(rows)
			}

			results, err := client.Search.Simple(cmd.Context(), args[0], contextLength)
			if err != nil {
				return err
			}
			if p.JSON {
				return p.Print(results)
			}
			if len(results) == 0 {
				return p.Lines("No results found.")
			}
			var lines []string
			for _, r := range results {
				lines = append(lines, "\n"+r.Filename)
				for _, m := range r.Matches {
					lines = append(lines, "  ..."+m.Context+"...")
				}
			}
			return p.Lines(lines...)
		},
	}
	cmd.Flags().BoolVar(&dql, "dql", false, "Use Dataview DQL query instead of simple search")
	cmd.Flags().IntVar(&contextLength, "context", obsidian.DefaultContextLength, "Context length for simple search")
	return cmd
}
