package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/feedkeeper/internal/client"
	"github.com/bnema/feedkeeper/internal/domain"
	"github.com/spf13/cobra"
)

func newFetchCmd(app *app) *cobra.Command {
	var profileID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "fetch <item-id>",
		Short: "Fetch a single item, serving from the local cache first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			feedClient, closeClient, err := wireProfileClient(cmd.Context(), app, profileID, wireOptions{credentials: true})
			if err != nil {
				return err
			}
			defer closeClient()

			itemID := domain.ItemID(args[0])

			item, err := feedClient.FetchItem(cmd.Context(), itemID)
			if errors.Is(err, client.ErrSessionNotReady) {
				if err := runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Authenticating...", feedClient.Bootstrap); err != nil {
					return fmt.Errorf("login: %w", err)
				}
				item, err = feedClient.FetchItem(cmd.Context(), itemID)
			}
			if err != nil {
				return err
			}

			return writeItemOutput(cmd, item, asJSON)
		},
	}

	cmd.Flags().StringVar(&profileID, "profile", "", "Profile ID")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func writeItemOutput(cmd *cobra.Command, item domain.Item, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(item)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s (@%s) at %s\n", item.Author, item.Handle, item.CreatedAt.Format(time.RFC3339))
	_, _ = fmt.Fprintln(out, item.Text)
	if item.IsReply() {
		_, _ = fmt.Fprintf(out, "reply to %s\n", item.ReplyToID)
	}
	if len(item.Hashtags) > 0 {
		_, _ = fmt.Fprintf(out, "tags: %s\n", strings.Join(item.Hashtags, ", "))
	}
	if item.Permalink != "" {
		_, _ = fmt.Fprintln(out, item.Permalink)
	}

	return nil
}
