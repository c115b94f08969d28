package options

import (
	"github.com/spf13/cobra"
)

// BoardOptions controls how the board is rendered.
type BoardOptions struct {
	ShowArchived bool
	Summary      bool
}

// AddBoardArgs wires the board rendering flags.
func AddBoardArgs(cmd *cobra.Command, o *BoardOptions) {
	cmd.Flags().BoolVar(&o.ShowArchived, "archived", false,
		"Include archived tasks.")
	cmd.Flags().BoolVar(&o.Summary, "summary", false,
		"Show per-character counts instead of the full board.")
}
