package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/phrasebook/pkg/app"
)

func addEdit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "edit a category or a phrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	addEditCategory(cmd)
	addEditPhrase(cmd)
	topLevel.AddCommand(cmd)
}

func addEditCategory(topLevel *cobra.Command) {
	var title string
	var order int

	cmd := &cobra.Command{
		Use:   "category <category>",
		Short: "change a category's title or position",
		Example: `
phrasebook edit category greetings --title "Morning greetings"
phrasebook edit category greetings --order 3
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
			update := app.CategoryUpdate{}
			if cmd.Flags().Changed("title") {
				update.Title = &title
			}
			if cmd.Flags().Changed("order") {
				update.Order = &order
			}
			if update.Title == nil && update.Order == nil {
				return fmt.Errorf("nothing to change, pass --title or --order")
			}
			return s.UpdateCategory(ctx, c.ID, update)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New category title.")
	cmd.Flags().IntVar(&order, "order", 0, "New category position.")
	topLevel.AddCommand(cmd)
}

func addEditPhrase(topLevel *cobra.Command) {
	var base, target string

	cmd := &cobra.Command{
		Use:   "phrase <category> <phrase>",
		Short: "change a phrase's base or target text",
		Example: `
phrasebook edit phrase greetings 1 --base "Good morning {name}!"
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
			update := app.PhraseUpdate{}
			if cmd.Flags().Changed("base") {
				update.Base = &base
			}
			if cmd.Flags().Changed("target") {
				update.Target = &target
			}
			if update.Base == nil && update.Target == nil {
				return fmt.Errorf("nothing to change, pass --base or --target")
			}
			return s.UpdatePhrase(ctx, c.ID, p.ID, update)
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "New base-language text.")
	cmd.Flags().StringVar(&target, "target", "", "New target-language text.")
	topLevel.AddCommand(cmd)
}
