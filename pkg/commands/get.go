package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/phrasebook/pkg/commands/options"
	"tableflip.dev/phrasebook/pkg/runner/get"
	"tableflip.dev/phrasebook/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	ro := &options.RecipientOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:       "get [phrases|categories|profiles]",
		Short:     "list phrases, categories, or profiles",
		ValidArgs: []string{get.KindPhrases, get.KindCategories, get.KindProfiles},
		Example: `
phrasebook get
phrasebook get phrases --category greetings --profile léna
phrasebook get categories
phrasebook get profiles --show-ids
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fmt.Errorf("expected at most one kind, got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			kind := get.KindPhrases
			if len(args) == 1 {
				kind = args[0]
			}
			g := get.Get{
				ShowID:      io.ShowID,
				Kind:        kind,
				Category:    co.Category,
				Profile:     ro.Profile,
				Nickname:    ro.Nickname,
				Persistence: p,
			}
			return g.Do(context.Background())
		},
	}

	options.AddCategoryArgs(cmd, co)
	options.AddRecipientArgs(cmd, ro)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
