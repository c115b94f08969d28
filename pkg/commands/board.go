package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"pxgdaily/pkg/commands/options"
	"pxgdaily/pkg/runner/board"
)

func addBoard(topLevel *cobra.Command) {
	bo := &options.BoardOptions{}
	co := &options.CharacterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "board",
		Aliases: []string{"get", "ls"},
		Short:   "Show the task board for the active profile.",
		Example: `
pxgdaily board
pxgdaily board --character Main
pxgdaily board --summary
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := load()
			if err != nil {
				return err
			}
			s := board.Board{
				ShowID:       io.ShowID,
				ShowArchived: bo.ShowArchived,
				Summary:      bo.Summary,
				Character:    co.Character,
				Rules:        cfg.ResetRules(),
				Persistence:  p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddBoardArgs(cmd, bo)
	options.AddCharacterArgs(cmd, co)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
