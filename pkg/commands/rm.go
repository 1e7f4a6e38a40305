package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func addRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "remove a category or a phrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	addRmCategory(cmd)
	addRmPhrase(cmd)
	topLevel.AddCommand(cmd)
}

func addRmCategory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "category <category>",
		Short: "remove a category and all of its phrases",
		Example: `
phrasebook rm category greetings
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := loadService()
			if err != nil {
				return err
			}
			c, err := resolveCategory(ctx, s, args[0])
			if err != nil {
				return err
			}
			return s.DeleteCategory(ctx, c.ID)
		},
	}
	topLevel.AddCommand(cmd)
}

func addRmPhrase(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "phrase <category> <phrase>",
		Short: "remove one phrase from a category",
		Example: `
phrasebook rm phrase greetings 2
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := loadService()
			if err != nil {
				return err
			}
			c, err := resolveCategory(ctx, s, args[0])
			if err != nil {
				return err
			}
			p, ok := c.FindPhrase(args[1])
			if !ok {
				return fmt.Errorf("unknown phrase %q in category %q", args[1], c.Title)
			}
			return s.DeletePhrase(ctx, c.ID, p.ID)
		},
	}
	topLevel.AddCommand(cmd)
}
