package cmd

import (
	"encoding/json"
	"fmt"

	statusadapter "github.com/bnema/feedkeeper/internal/adapters/render/status"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var profileID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show session and archive state without touching the network",
		RunE: func(cmd *cobra.Command, _ []string) error {
			feedClient, closeClient, err := wireProfileClient(cmd.Context(), app, profileID, wireOptions{})
			if err != nil {
				return err
			}
			defer closeClient()

			status, err := feedClient.Status(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(status)
			}

			rendered, err := app.statusRenderer(status, statusadapter.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&profileID, "profile", "", "Profile ID")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}
