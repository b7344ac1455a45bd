package cli

import (
	"github.com/spf13/cobra"

	"github.com/bttk/obsidian-cli/pkg/obsidian"
)

// dashContentHelp is appended to the help of commands taking inline content.
const dashContentHelp = "Content that starts with \"-\", such as a list item, must follow \"--\"\n" +
	"so it is not parsed as a flag."

// patchFlags are shared by every patch subcommand.
type patchFlags struct {
	target         string
	targetType     string
	operation      string
	delimiter      string
	trimWhitespace bool
}

func (f *patchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.target, "target", "", "Target location (heading name, block ID, or frontmatter field)")
	cmd.Flags().StringVar(&f.targetType, "type", "", "Target type: heading, block, or frontmatter")
	cmd.Flags().StringVar(&f.operation, "operation", string(obsidian.PatchAppend), "Operation: append, prepend, or replace")
	cmd.Flags().StringVar(&f.delimiter, "delimiter", "", "Delimiter between nested heading names (server default ::)")
	cmd.Flags().BoolVar(&f.trimWhitespace, "trim-whitespace", false, "Trim whitespace around the target before patching")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("type")
}

// options validates the flags. It runs from PreRunE, ahead of cobra's own
// required-flag check, so that check is done here first.
// Trim-Target-Whitespace is only sent when the flag was given explicitly.
func (f *patchFlags) options(cmd *cobra.Command) (obsidian.PatchOptions, error) {
	if err := cmd.ValidateRequiredFlags(); err != nil {
		return obsidian.PatchOptions{}, err
	}
	op, err := obsidian.ParsePatchOperation(f.operation)
	if err != nil {
		return obsidian.PatchOptions{}, err
	}
	tt, err := obsidian.ParseTargetType(f.targetType)
	if err != nil {
		return obsidian.PatchOptions{}, err
	}

	opts := obsidian.PatchOptions{
		Operation:  op,
		TargetType: tt,
		Target:     f.target,
		Delimiter:  f.delimiter,
	}
	if cmd.Flags().Changed("trim-whitespace") {
		trim := f.trimWhitespace
		opts.TrimWhitespace = &trim
	}
	return opts, nil
}
