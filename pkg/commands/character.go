package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"pxgdaily/pkg/runner/character"
)

func addCharacter(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "character",
		Aliases: []string{"char"},
		Short:   "Manage the characters on the active profile.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addCharacterAdd(cmd)
	addCharacterRemove(cmd)
	addCharacterList(cmd)
	topLevel.AddCommand(cmd)
}

func addCharacterAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a character seeded with the standard task set.",
		Example: `
pxgdaily character add Main
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a character name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := load()
			if err != nil {
				return err
			}
			s := character.Add{
				Name:        strings.Join(args, " "),
				Rules:       cfg.ResetRules(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addCharacterRemove(topLevel *cobra.Command) {
	confirmed := false

	cmd := &cobra.Command{
		Use:     "remove [name]",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a character and all of its tasks.",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a character name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := load()
			if err != nil {
				return err
			}
			s := character.Remove{
				Name:        strings.Join(args, " "),
				Confirmed:   confirmed,
				Rules:       cfg.ResetRules(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "Skip the confirmation.")
	topLevel.AddCommand(cmd)
}

func addCharacterList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List characters with open, done, and archived counts.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := load()
			if err != nil {
				return err
			}
			s := character.List{
				Rules:       cfg.ResetRules(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
