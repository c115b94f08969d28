package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"pxgdaily/pkg/commands/options"
	"pxgdaily/pkg/runner/enter"
)

func addEnter(topLevel *cobra.Command) {
	po := &options.ProfileOptions{}

	cmd := &cobra.Command{
		Use:   "enter [name]",
		Short: "Open a profile, creating it when it does not exist yet.",
		Example: `
pxgdaily enter Red
pxgdaily enter Red --code AB12
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a display name")
			}
			po.Name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := load()
			if err != nil {
				return err
			}
			s := enter.Enter{
				Name:        po.Name,
				Code:        po.Code,
				Rules:       cfg.ResetRules(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCodeArg(cmd, po)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
