// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ProfileOptions captures the (display name, sync code) pair commands use
// to address a profile.
type ProfileOptions struct {
	Name string
	Code string
}

// AddCodeArg wires the sync code flag on the provided command.
func AddCodeArg(cmd *cobra.Command, o *ProfileOptions) {
	cmd.Flags().StringVar(&o.Code, "code", "",
		"Sync code of the profile. Leave empty to generate one.")
}

// CharacterOptions selects which character a command operates on.
type CharacterOptions struct {
	Character string
}

// AddCharacterArgs wires the character selection flag.
func AddCharacterArgs(cmd *cobra.Command, o *CharacterOptions) {
	cmd.Flags().StringVarP(&o.Character, "character", "c", "",
		"Specify the character by name or id.")
}
