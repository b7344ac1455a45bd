package cli

import (
	"github.com/spf13/cobra"

	"github.com/bttk/obsidian-cli/pkg/obsidian"
)

func (a *app) dailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Manage daily notes (shortcut for periodic daily)",
		Example: `  # Read today's note
  obsidian daily read

  # Append to the note of a given day
  obsidian daily append --date 2024-03-01 -- "- met with Sam"`,
	}
	cmd.AddCommand(a.periodicVerbs(obsidian.PeriodDaily)...)
	return cmd
}

// periodicCmd has one child per period. Anything else given in the period
// position is rejected with the list of valid periods.
func (a *app) periodicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "periodic <period>",
		Short: "Manage periodic notes (daily, weekly, monthly, quarterly, yearly)",
		Example: `  # Read this week's note
  obsidian periodic weekly read

  # Replace last month's note from a file
  obsidian periodic monthly update -f review.md --date 2024-02-01`,
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			if _, err := obsidian.ParsePeriod(args[0]); err != nil {
				return err
			}
			return cmd.Help()
		},
	}

	for _, p := range obsidian.Periods {
		child := &cobra.Command{
			Use:   string(p),
			Short: "Manage the " + string(p) + " note",
		}
		child.AddCommand(a.periodicVerbs(p)...)
		cmd.AddCommand(child)
	}
	return cmd
}

func (a *app) periodicVerbs(p obsidian.Period) []*cobra.Command {
	return noteVerbs{
		app:     a,
		label:   string(p) + " note",
		dated:   true,
		resolve: periodicOps(p),
	}.commands()
}
