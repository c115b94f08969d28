package commands

import (
	"context"

	"github.com/spf13/cobra"

	"pxgdaily/pkg/runner/code"
)

func addCode(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "code",
		Short: "Show the active profile and its sync code.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, p, err := load()
			if err != nil {
				return err
			}
			s := code.Code{Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	topLevel.AddCommand(cmd)

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Clear the active profile pointer. The profile stays stored.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, p, err := load()
			if err != nil {
				return err
			}
			s := code.Logout{Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	topLevel.AddCommand(logout)
}
