package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"pxgdaily/pkg/commands/options"
	"pxgdaily/pkg/runner/importer"
)

func addImport(topLevel *cobra.Command) {
	po := &options.ProfileOptions{}

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Load a profile from an exported document and make it active.",
		Example: `
pxgdaily import red-backup.json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires exactly one file to import")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := load()
			if err != nil {
				return err
			}
			s := importer.Import{
				Path:        args[0],
				Code:        po.Code,
				Rules:       cfg.ResetRules(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCodeArg(cmd, po)
	topLevel.AddCommand(cmd)
}
