package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/phrasebook/pkg/store"
	"tableflip.dev/phrasebook/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive phrase carousel",
		Example: `
phrasebook ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			return tui.Run(p)
		},
	}

	topLevel.AddCommand(cmd)
}
