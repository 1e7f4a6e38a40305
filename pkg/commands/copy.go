package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/phrasebook/pkg/commands/options"
	runcopy "tableflip.dev/phrasebook/pkg/runner/copy"
	"tableflip.dev/phrasebook/pkg/store"
)

func addCopy(topLevel *cobra.Command) {
	ro := &options.RecipientOptions{}

	cmd := &cobra.Command{
		Use:   "copy <category> <phrase>",
		Short: "substitute a phrase for a recipient and copy it",
		Long: "Substitute the recipient's name into a phrase's target text and place it " +
			"on the system clipboard. The category is matched by id or title, the phrase " +
			"by its 1-based position or id.",
		Example: `
phrasebook copy greetings 1
phrasebook copy greetings 1 --profile léna --nickname star
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected <category> <phrase>, got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			c := runcopy.Copy{
				Category:    args[0],
				Phrase:      args[1],
				Profile:     ro.Profile,
				Nickname:    ro.Nickname,
				Persistence: p,
			}
			return c.Do(context.Background())
		},
	}

	options.AddRecipientArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}
