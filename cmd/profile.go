package cmd

import (
	"fmt"

	"github.com/bnema/feedkeeper/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage feed profiles",
	}

	cmd.AddCommand(
		newProfileListCmd(app),
		newProfileAddCmd(app),
	)

	return cmd
}

func newProfileListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := app.profiles.List(cmd.Context())
			if err != nil {
				return err
			}

			for _, profile := range profiles {
				name := profile.Name
				if name == "" {
					name = profile.Handle
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t@%s\t%s\n", profile.ID, profile.Handle, name)
			}

			return nil
		},
	}
}

func newProfileAddCmd(app *app) *cobra.Command {
	var id string
	var handle string
	var name string
	var contact string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.profiles.Save(cmd.Context(), domain.Profile{
				ID:      domain.ProfileID(id),
				Handle:  handle,
				Name:    name,
				Contact: contact,
			})
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Profile ID")
	cmd.Flags().StringVar(&handle, "handle", "", "Feed handle")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&contact, "contact", "", "Contact answer for login verification")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("handle")

	return cmd
}
