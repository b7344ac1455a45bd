package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bttk/obsidian-cli/internal/version"
	"github.com/bttk/obsidian-cli/pkg/obsidian"
)

// statusResult is the JSON shape of the status command.
type statusResult struct {
	*obsidian.ServerStatus
	UpdateAvailable *string `json:"updateAvailable"`
}

func (a *app) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connection to Obsidian",
		Long:  "Check connection to Obsidian and whether a newer obsidian-cli release is available.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			var (
				status    *obsidian.ServerStatus
				latest    string
				hasUpdate bool
			)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				status, err = client.Status(ctx)
				return err
			})
			g.Go(func() error {
				latest, hasUpdate = a.checker.Latest(ctx)
				return nil
			})
			if err := g.Wait(); err != nil {
				return err
			}

			p := a.printer(cmd)
			if p.JSON {
				res := statusResult{ServerStatus: status}
				if hasUpdate {
					res.UpdateAvailable = &latest
				}
				return p.Print(res)
			}

			authenticated := "No"
			if status.Authenticated {
				authenticated = "Yes"
			}
			lines := []string{
				"Connected to " + status.Service,
				"Obsidian version: " + status.Versions.Obsidian,
				"Plugin version: " + status.Versions.Self,
				"Authenticated: " + authenticated,
			}
			if hasUpdate {
				lines = append(lines,
					fmt.Sprintf("\nUpdate available: v%s (current: v%s)", latest, version.Version),
					"Run 'obsidian update' to install",
				)
			}
			return p.Lines(lines...)
		},
	}
}
