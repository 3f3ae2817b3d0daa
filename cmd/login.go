package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var profileID string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate a profile session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			feedClient, closeClient, err := wireProfileClient(cmd.Context(), app, profileID, wireOptions{credentials: true})
			if err != nil {
				return err
			}
			defer closeClient()

			if err := runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Authenticating...", feedClient.Bootstrap); err != nil {
				return fmt.Errorf("login: %w", err)
			}

			status, err := feedClient.Status(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as @%s (account %s)\n", status.Profile.Handle, status.Session.UserID)
			return nil
		},
	}

	cmd.Flags().StringVar(&profileID, "profile", "", "Profile ID")

	return cmd
}
