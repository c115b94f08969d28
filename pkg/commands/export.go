package commands

import (
	"context"

	"github.com/spf13/cobra"

	"pxgdaily/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	var path string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active profile as a portable JSON document.",
		Example: `
pxgdaily export
pxgdaily export --file red-backup.json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := load()
			if err != nil {
				return err
			}
			s := export.Export{
				Path:        path,
				Rules:       cfg.ResetRules(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "Destination file. Empty writes to stdout.")
	topLevel.AddCommand(cmd)
}
