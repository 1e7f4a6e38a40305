package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/phrasebook/pkg/app"
	"tableflip.dev/phrasebook/pkg/avatar"
	"tableflip.dev/phrasebook/pkg/timezone"
)

func addProfile(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "manage recipient profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	addProfileAdd(cmd)
	addProfileSet(cmd)
	addProfileRm(cmd)
	addProfileTimezones(cmd)
	topLevel.AddCommand(cmd)
}

func addProfileAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <display name> <translation>",
		Short: "add a recipient",
		Example: `
phrasebook profile add "Léna" "蕾娜"
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadService()
			if err != nil {
				return err
			}
			p, err := s.CreateProfile(context.Background(), args[0], args[1])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(color.Output, "added profile %s (%s)\n", p.DisplayName, p.ID)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addProfileSet(topLevel *cobra.Command) {
	var name, translation, image, birthdate, zone string

	cmd := &cobra.Command{
		Use:   "set <profile>",
		Short: "change a recipient's details",
		Long: "Change a recipient's details. --image reads a local PNG, JPEG, or GIF, " +
			"crops it square, scales it down, and stores it inline. --timezone takes an " +
			"IANA zone identifier; see `phrasebook profile timezones`.",
		Example: `
phrasebook profile set léna --birthdate 2015-06-29 --timezone Asia/Shanghai
phrasebook profile set léna --image ./léna.png
`,
		Args: cobra.ExactArgs(1),
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

			update := app.ProfileUpdate{}
			if cmd.Flags().Changed("name") {
				update.DisplayName = &name
			}
			if cmd.Flags().Changed("translation") {
				update.MainTranslation = &translation
			}
			if cmd.Flags().Changed("birthdate") {
				update.Birthdate = &birthdate
			}
			if cmd.Flags().Changed("timezone") {
				if !timezone.Valid(zone) {
					return fmt.Errorf("unknown timezone %q, see `phrasebook profile timezones`", zone)
				}
				update.Timezone = &zone
			}
			if cmd.Flags().Changed("image") {
				encoded, err := processImage(image)
				if err != nil {
					return err
				}
				update.Image = &encoded
			}
			if update == (app.ProfileUpdate{}) {
				return fmt.Errorf("nothing to change")
			}
			return s.UpdateProfile(ctx, p.ID, update)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New display name.")
	cmd.Flags().StringVar(&translation, "translation", "", "New name translation.")
	cmd.Flags().StringVar(&image, "image", "", "Path to an avatar image file.")
	cmd.Flags().StringVar(&birthdate, "birthdate", "", "Birthdate as YYYY-MM-DD.")
	cmd.Flags().StringVar(&zone, "timezone", "", "IANA timezone identifier.")
	topLevel.AddCommand(cmd)
}

// processImage shrinks an avatar file and packs it into a data URI so the
// record stays self-contained.
func processImage(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	processed, err := avatar.Process(f)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:%s;base64,%s", processed.MIMEType,
		base64.StdEncoding.EncodeToString(processed.Bytes)), nil
}

func addProfileRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm <profile>",
		Short: "remove a recipient and their nicknames",
		Example: `
phrasebook profile rm léna
`,
		Args: cobra.ExactArgs(1),
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
			return s.DeleteProfile(ctx, p.ID)
		},
	}
	topLevel.AddCommand(cmd)
}

func addProfileTimezones(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "timezones [country]",
		Short: "list the timezones profile set accepts",
		Example: `
phrasebook profile timezones
phrasebook profile timezones france
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			countries, err := timezone.Timezones()
			if err != nil {
				return err
			}
			filter := ""
			if len(args) == 1 {
				filter = strings.ToLower(args[0])
			}
			bold := color.New(color.Bold)
			for _, c := range countries {
				if filter != "" && !strings.Contains(strings.ToLower(c.Country), filter) {
					continue
				}
				_, _ = fmt.Fprintln(color.Output, bold.Sprint(c.Country))
				for _, z := range c.Timezones {
					_, _ = fmt.Fprintf(color.Output, "  %s\n", z)
				}
			}
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}
