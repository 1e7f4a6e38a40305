// Package commands wires the phrasebook CLI surface.
package commands

import (
	"github.com/spf13/cobra"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "phrasebook",
		Short: "Quickly copy canned bilingual messages to the clipboard.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addCopy(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addRm(topLevel)
	addProfile(topLevel)
	addNickname(topLevel)
	addInit(topLevel)
	addVersion(topLevel)
}
