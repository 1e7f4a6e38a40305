package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/phrasebook/pkg/runner/initialize"
	"tableflip.dev/phrasebook/pkg/store"
)

func addInit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "seed the store with the default profiles and phrases",
		Example: `
phrasebook init
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := initialize.Initialize{Persistence: p}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
