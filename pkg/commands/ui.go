package commands

import (
	"context"

	"github.com/spf13/cobra"

	"pxgdaily/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive board",
		Example: `
pxgdaily ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := load()
			if err != nil {
				return err
			}
			i := ui.UI{
				Rules:       cfg.ResetRules(),
				Focus:       cfg.FocusDuration(),
				Persistence: p,
			}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
