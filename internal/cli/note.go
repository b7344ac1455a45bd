package cli

import (
	"context"
	"path"

	"github.com/spf13/cobra"

	"github.com/bttk/obsidian-cli/pkg/obsidian"
)

func (a *app) noteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage vault notes",
		Long: "Manage notes addressed by their path inside the vault.\n\n" +
			"Paths without an extension get \".md\" appended.",
		Example: `  # Read a note with its frontmatter and tags
  obsidian note read Projects/plan --metadata

  # Create a note from a local file
  obsidian note create Inbox/idea -f idea.md

  # Append a list item
  obsidian note append Inbox/idea -- "- ask about pricing"`,
	}
	cmd.AddCommand(
		a.noteReadCmd(),
		a.noteWriteCmd("create", "Create a new note", "Created", (*obsidian.VaultService).Create),
		a.noteWriteCmd("update", "Update an existing note", "Updated", (*obsidian.VaultService).Update),
		a.noteDeleteCmd(),
		a.noteAppendCmd(),
		a.notePatchCmd(),
	)
	return cmd
}

func (a *app) noteReadCmd() *cobra.Command {
	var metadata bool
	cmd := &cobra.Command{
		Use:   "read <path>",
		Short: "Read a note from the vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			path := notePath(args[0])

			if metadata {
				note, err := client.Vault.GetNote(cmd.Context(), path)
				if err != nil {
					return err
				}
				return a.printer(cmd).Print(note)
			}
			content, err := client.Vault.Get(cmd.Context(), path)
			if err != nil {
				return err
			}
			return a.printer(cmd).Print(content)
		},
	}
	cmd.Flags().BoolVar(&metadata, "metadata", false, "Include frontmatter and metadata")
	return cmd
}

// noteWriteCmd builds create and update, which differ only in wording.
func (a *app) noteWriteCmd(name, short, done string, write func(*obsidian.VaultService, context.Context, string, string) error) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   name + " <path> [content]",
		Short: short,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readContent(args[1:], file)
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			path := notePath(args[0])
			if err := write(client.Vault, cmd.Context(), path, body); err != nil {
				return err
			}
			return a.printer(cmd).Success(done+": "+path, map[string]any{"path": path})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read content from file")
	return cmd
}

func (a *app) noteDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			path := notePath(args[0])
			if err := client.Vault.Delete(cmd.Context(), path); err != nil {
				return err
			}
			return a.printer(cmd).Success("Deleted: "+path, map[string]any{"path": path})
		},
	}
}

func (a *app) noteAppendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "append <path> <content>",
		Short: "Append content to a note",
		Long:  "Append content to a note.\n\n" + dashContentHelp,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			path := notePath(args[0])
			if err := client.Vault.Append(cmd.Context(), path, args[1]); err != nil {
				return err
			}
			return a.printer(cmd).Success("Appended to: "+path, map[string]any{"path": path})
		},
	}
}

func (a *app) notePatchCmd() *cobra.Command {
	var flags patchFlags
	var opts obsidian.PatchOptions
	cmd := &cobra.Command{
		Use:   "patch <path> <content>",
		Short: "Insert content relative to a heading, block, or frontmatter",
		Long:  "Insert content into a note relative to a heading, block, or frontmatter field.\n\n" + dashContentHelp,
		Args:  cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			opts, err = flags.options(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			path := notePath(args[0])
			if err := client.Vault.Patch(cmd.Context(), path, args[1], opts); err != nil {
				return err
			}
			return a.printer(cmd).Success("Patched: "+path, map[string]any{"path": path})
		},
	}
	flags.register(cmd)
	return cmd
}

// notePath adds the markdown extension to paths that have none, so
// attachments keep their own extension.
func notePath(p string) string {
	if path.Ext(p) != "" {
		return p
	}
	return obsidian.EnsureMarkdownExtension(p)
}
