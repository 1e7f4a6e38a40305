package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/phrasebook/pkg/commands/options"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a category or a phrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	addAddCategory(cmd)
	addAddPhrase(cmd)
	topLevel.AddCommand(cmd)
}

func addAddCategory(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "category <title>",
		Short: "add an empty category placed after the existing ones",
		Example: `
phrasebook add category "Bedtime"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return err
			}
			c, err := s.CreateCategory(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(color.Output, "added category %s (%s)\n", c.Title, c.ID)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addAddPhrase(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:   "phrase <base text> <target text>",
		Short: "add a bilingual phrase to a category",
		Long: "Add a bilingual phrase to a category. Both texts may contain {name} " +
			"placeholders, which substitution fills with the recipient's name.",
		Example: `
phrasebook add phrase --category greetings "Good morning {name}!" "早上好{name}！"
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if co.Category == "" {
				return fmt.Errorf("--category is required")
			}
			ctx := context.Background()
			s, err := loadService()
			if err != nil {
				return err
			}
			c, err := resolveCategory(ctx, s, co.Category)
			if err != nil {
				return err
			}
			p, err := s.AddPhrase(ctx, c.ID, args[0], args[1])
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("category %q vanished", co.Category)
			}
			_, _ = fmt.Fprintf(color.Output, "added phrase to %s (%s)\n", c.Title, p.ID)
			return nil
		},
	}
	options.AddCategoryArgs(cmd, co)
	topLevel.AddCommand(cmd)
}
