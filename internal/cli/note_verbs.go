package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bttk/obsidian-cli/pkg/obsidian"
)

// noteOps are the operations available on a note that is addressed
// implicitly: the active file or a periodic note.
type noteOps struct {
	get     func(ctx context.Context) (string, error)
	getNote func(ctx context.Context) (*obsidian.Note, error)
	update  func(ctx context.Context, content string) error
	append  func(ctx context.Context, content string) error
	delete  func(ctx context.Context) error
	patch   func(ctx context.Context, content string, opts obsidian.PatchOptions) error
}

// noteResolver returns the operations for the note selected by date. Targets
// without a date ignore it.
type noteResolver func(c *obsidian.Client, date *obsidian.Date) noteOps

func activeOps(c *obsidian.Client, _ *obsidian.Date) noteOps {
	s := c.ActiveFile
	return noteOps{
		get:     s.Get,
		getNote: s.GetNote,
		update:  s.Update,
		append:  s.Append,
		delete:  s.Delete,
		patch:   s.Patch,
	}
}

func periodicOps(period obsidian.Period) noteResolver {
	return func(c *obsidian.Client, date *obsidian.Date) noteOps {
		s := c.Periodic
		return noteOps{
			get: func(ctx context.Context) (string, error) {
				return s.Get(ctx, period, date)
			},
			getNote: func(ctx context.Context) (*obsidian.Note, error) {
				return s.GetNote(ctx, period, date)
			},
			update: func(ctx context.Context, content string) error {
				return s.Update(ctx, period, content, date)
			},
			append: func(ctx context.Context, content string) error {
				return s.Append(ctx, period, content, date)
			},
			delete: func(ctx context.Context) error {
				return s.Delete(ctx, period, date)
			},
			patch: func(ctx context.Context, content string, opts obsidian.PatchOptions) error {
				return s.Patch(ctx, period, content, opts, date)
			},
		}
	}
}

// noteVerbs builds read, update, delete, append and patch for one implicit
// note. label is used in confirmations ("Updated <label>"). When dated is
// set every verb accepts --date.
type noteVerbs struct {
	app     *app
	label   string
	dated   bool
	resolve noteResolver
}

func (v noteVerbs) commands() []*cobra.Command {
	return []*cobra.Command{v.read(), v.update(), v.delete(), v.append(), v.patch()}
}

func (v noteVerbs) addDateFlag(cmd *cobra.Command, date *string) {
	if v.dated {
		cmd.Flags().StringVar(date, "date", "", "Specific date (YYYY-MM-DD)")
	}
}

// ops resolves the client and the optional date in one step.
func (v noteVerbs) ops(date string) (noteOps, error) {
	var d *obsidian.Date
	if date != "" {
		parsed, err := obsidian.ParseDate(date)
		if err != nil {
			return noteOps{}, err
		}
		d = &parsed
	}

	client, err := v.app.client()
	if err != nil {
		return noteOps{}, err
	}
	return v.resolve(client, d), nil
}

func (v noteVerbs) read() *cobra.Command {
	var metadata bool
	var date string
	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read the " + v.label,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := v.ops(date)
			if err != nil {
				return err
			}
			if metadata {
				note, err := ops.getNote(cmd.Context())
				if err != nil {
					return err
				}
				return v.app.printer(cmd).Print(note)
			}
			content, err := ops.get(cmd.Context())
			if err != nil {
				return err
			}
			return v.app.printer(cmd).Print(content)
		},
	}
	cmd.Flags().BoolVar(&metadata, "metadata", false, "Include frontmatter and metadata")
	v.addDateFlag(cmd, &date)
	return cmd
}

func (v noteVerbs) update() *cobra.Command {
	var file, date string
	cmd := &cobra.Command{
		Use:   "update [content]",
		Short: "Replace the content of the " + v.label,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readContent(args, file)
			if err != nil {
				return err
			}
			ops, err := v.ops(date)
			if err != nil {
				return err
			}
			if err := ops.update(cmd.Context(), body); err != nil {
				return err
			}
			return v.app.printer(cmd).Success("Updated "+v.label, nil)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read content from file")
	v.addDateFlag(cmd, &date)
	return cmd
}

func (v noteVerbs) delete() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the " + v.label,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := v.ops(date)
			if err != nil {
				return err
			}
			if err := ops.delete(cmd.Context()); err != nil {
				return err
			}
			return v.app.printer(cmd).Success("Deleted "+v.label, nil)
		},
	}
	v.addDateFlag(cmd, &date)
	return cmd
}

func (v noteVerbs) append() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "append <content>",
		Short: "Append content to the " + v.label,
		Long:  "Append content to the " + v.label + ".\n\n" + dashContentHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := v.ops(date)
			if err != nil {
				return err
			}
			if err := ops.append(cmd.Context(), args[0]); err != nil {
				return err
			}
			return v.app.printer(cmd).Success("Appended to "+v.label, nil)
		},
	}
	v.addDateFlag(cmd, &date)
	return cmd
}

func (v noteVerbs) patch() *cobra.Command {
	var flags patchFlags
	var opts obsidian.PatchOptions
	var date string
	cmd := &cobra.Command{
		Use:   "patch <content>",
		Short: "Insert content relative to a heading, block, or frontmatter",
		Long:  "Insert content into the " + v.label + " relative to a heading, block, or frontmatter field.\n\n" + dashContentHelp,
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			opts, err = flags.options(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := v.ops(date)
			if err != nil {
				return err
			}
			if err := ops.patch(cmd.Context(), args[0], opts); err != nil {
				return err
			}
			return v.app.printer(cmd).Success("Patched "+v.label, nil)
		},
	}
	flags.register(cmd)
	v.addDateFlag(cmd, &date)
	return cmd
}
