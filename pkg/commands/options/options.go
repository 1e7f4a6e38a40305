// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// RecipientOptions captures the recipient flags substitution commands accept.
type RecipientOptions struct {
	Profile  string
	Nickname string
}

// AddRecipientArgs wires recipient flags on the provided command.
func AddRecipientArgs(cmd *cobra.Command, o *RecipientOptions) {
	cmd.Flags().StringVarP(&o.Profile, "profile", "p", "",
		"Recipient profile, by id or display name. Defaults to the first profile.")
	cmd.Flags().StringVarP(&o.Nickname, "nickname", "n", "",
		"Nickname of the recipient, by id or display text.")
}

// CategoryOptions captures category selection flags.
type CategoryOptions struct {
	Category string
}

// AddCategoryArgs wires the category filter flag on the provided command.
func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Specify the category, by id or title.")
}

// IDOptions captures record id display flags.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs wires the id display flag on the provided command.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-ids", false,
		"Show record ids in listings.")
}
