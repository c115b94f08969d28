package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"pxgdaily/pkg/commands/options"
	"pxgdaily/pkg/period"
	"pxgdaily/pkg/runner/task"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks on a character.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskRename(cmd)
	addTaskArchive(cmd)
	addTaskRestore(cmd)
	addTaskRemove(cmd)
	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command) {
	co := &options.CharacterOptions{}
	periodFlag := string(period.Daily)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a task to a character.",
		Example: `
pxgdaily task add "Mega raid" --period weekly --character Main
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := period.Parse(periodFlag)
			if err != nil {
				return err
			}
			cfg, persistence, err := load()
			if err != nil {
				return err
			}
			s := task.Add{
				Title:       strings.Join(args, " "),
				Period:      p,
				Character:   co.Character,
				Rules:       cfg.ResetRules(),
				Persistence: persistence,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&periodFlag, "period", "p", string(period.Daily),
		"Task period. One of daily, weekly, monthly.")
	options.AddCharacterArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

func addTaskRename(topLevel *cobra.Command) {
	co := &options.CharacterOptions{}
	var title string

	cmd := &cobra.Command{
		Use:   "rename [task]",
		Short: "Rename a user task.",
		Example: `
pxgdaily task rename "my grind" --to "Evening grind"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task id or title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := load()
			if err != nil {
				return err
			}
			s := task.Rename{
				Ref:         strings.Join(args, " "),
				Title:       title,
				Character:   co.Character,
				Rules:       cfg.ResetRules(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&title, "to", "", "The new title.")
	_ = cmd.MarkFlagRequired("to")
	options.AddCharacterArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

func addTaskArchive(topLevel *cobra.Command) {
	co := &options.CharacterOptions{}

	cmd := &cobra.Command{
		Use:   "archive [task]",
		Short: "Archive a task; it keeps its history but leaves the board.",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task id or title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := load()
			if err != nil {
				return err
			}
			s := task.Archive{
				Ref:         strings.Join(args, " "),
				Character:   co.Character,
				Rules:       cfg.ResetRules(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCharacterArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

func addTaskRestore(topLevel *cobra.Command) {
	co := &options.CharacterOptions{}

	cmd := &cobra.Command{
		Use:   "restore [task]",
		Short: "Bring an archived task back to the board, open.",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task id or title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := load()
			if err != nil {
				return err
			}
			s := task.Archive{
				Ref:         strings.Join(args, " "),
				Character:   co.Character,
				Restore:     true,
				Rules:       cfg.ResetRules(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCharacterArgs(cmd, co)
	topLevel.AddCommand(cmd)
}

func addTaskRemove(topLevel *cobra.Command) {
	co := &options.CharacterOptions{}

	cmd := &cobra.Command{
		Use:     "remove [task]",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete a user task permanently.",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task id or title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, p, err := load()
			if err != nil {
				return err
			}
			s := task.Remove{
				Ref:         strings.Join(args, " "),
				Character:   co.Character,
				Rules:       cfg.ResetRules(),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddCharacterArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
