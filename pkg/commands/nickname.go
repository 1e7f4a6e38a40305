package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/phrasebook/pkg/app"
)

func addNickname(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "nickname",
		Short: "manage a recipient's nicknames",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	addNicknameAdd(cmd)
	addNicknameEdit(cmd)
	addNicknameRm(cmd)
	topLevel.AddCommand(cmd)
}

func addNicknameAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <profile> <display> <target form>",
		Short: "add a nickname to a recipient",
		Long: "Add a nickname to a recipient. The display text doubles as the " +
			"base-language substitution value; the target form is what {name} becomes " +
			"in the target language.",
		Example: `
phrasebook nickname add léna "my star" "我的小星星"
`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := loadService()
			if err != nil {
				return err
			}
			p, err := resolveProfile(ctx, s, args[0])
			if err != nil {
				return err
			}
			n, err := s.AddNickname(ctx, p.ID, args[1], args[2])
			if err != nil {
				return err
			}
			if n == nil {
				return fmt.Errorf("profile %q vanished", args[0])
			}
			_, _ = fmt.Fprintf(color.Output, "added nickname %s to %s (%s)\n", n.Display, p.DisplayName, n.ID)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addNicknameEdit(topLevel *cobra.Command) {
	var display, base, target string

	cmd := &cobra.Command{
		Use:   "edit <profile> <nickname>",
		Short: "change a nickname's display or substitution values",
		Example: `
phrasebook nickname edit léna star --target "小星星"
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := loadService()
			if err != nil {
				return err
			}
			p, err := resolveProfile(ctx, s, args[0])
			if err != nil {
				return err
			}
			n, ok := p.FindNickname(args[1])
			if !ok {
				return fmt.Errorf("unknown nickname %q on profile %q", args[1], p.DisplayName)
			}
			update := app.NicknameUpdate{}
			if cmd.Flags().Changed("display") {
				update.Display = &display
			}
			if cmd.Flags().Changed("base") {
				update.BaseValue = &base
			}
			if cmd.Flags().Changed("target") {
				update.TargetValue = &target
			}
			if update == (app.NicknameUpdate{}) {
				return fmt.Errorf("nothing to change, pass --display, --base, or --target")
			}
			return s.UpdateNickname(ctx, p.ID, n.ID, update)
		},
	}
	cmd.Flags().StringVar(&display, "display", "", "New display text.")
	cmd.Flags().StringVar(&base, "base", "", "New base-language substitution value.")
	cmd.Flags().StringVar(&target, "target", "", "New target-language substitution value.")
	topLevel.AddCommand(cmd)
}

func addNicknameRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm <profile> <nickname>",
		Short: "remove a nickname from a recipient",
		Example: `
phrasebook nickname rm léna star
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := loadService()
			if err != nil {
				return err
			}
			p, err := resolveProfile(ctx, s, args[0])
			if err != nil {
				return err
			}
			n, ok := p.FindNickname(args[1])
			if !ok {
				return fmt.Errorf("unknown nickname %q on profile %q", args[1], p.DisplayName)
			}
			return s.DeleteNickname(ctx, p.ID, n.ID)
		},
	}
	topLevel.AddCommand(cmd)
}
