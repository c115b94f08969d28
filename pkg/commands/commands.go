package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"pxgdaily/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "pxgdaily",
		Short: base.Wrap80("Track recurring in-game dailies, weeklies, and monthlies across your characters."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addEnter(topLevel)
	addBoard(topLevel)
	addDone(topLevel)
	addTask(topLevel)
	addCharacter(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addCode(topLevel)
	addKey(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}

// load builds the config and the disk-backed persistence every command
// shares.
func load() (store.Config, store.Persistence, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, p, nil
}
