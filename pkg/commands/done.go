package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"pxgdaily/pkg/commands/options"
	"pxgdaily/pkg/runner/done"
)

func addDone(topLevel *cobra.Command) {
	co := &options.CharacterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "done [task]",
		Aliases: []string{"toggle", "check"},
		Short:   "Toggle a task's completion for its current cycle.",
		Example: `
pxgdaily done hunt
pxgdaily done "daily quest" --character Main
pxgdaily done <task id>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task id or title")
			}
			io.ID = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := load()
			if err != nil {
				return err
			}
			s := done.Done{
				Ref:         io.ID,
				Character:   co.Character,
				Rules:       cfg.ResetRules(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCharacterArgs(cmd, co)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
