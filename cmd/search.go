package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/feedkeeper/internal/ports"
	"github.com/spf13/cobra"
)

func newSearchCmd(app *app) *cobra.Command {
	var profileID string
	var limit int
	var mode string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the feed through the dispatch queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			searchMode, err := parseSearchMode(mode)
			if err != nil {
				return err
			}

			feedClient, closeClient, err := wireProfileClient(cmd.Context(), app, profileID, wireOptions{credentials: true})
			if err != nil {
				return err
			}
			defer closeClient()

			if err := runSpinner(cmd.Context(), cmd.ErrOrStderr(), "Authenticating...", feedClient.Bootstrap); err != nil {
				return fmt.Errorf("login: %w", err)
			}

			page, err := feedClient.Search(cmd.Context(), args[0], limit, searchMode, "")
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(page)
			}

			out := cmd.OutOrStdout()
			for _, item := range page.Items {
				_, _ = fmt.Fprintf(out, "%s\t@%s\t%s\n", item.ID, item.Handle, firstLine(item.Text))
			}
			if page.NextCursor != "" {
				_, _ = fmt.Fprintf(out, "next cursor: %s\n", page.NextCursor)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&profileID, "profile", "", "Profile ID")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results (0 uses the default)")
	cmd.Flags().StringVar(&mode, "mode", "latest", "Result ranking (latest|top)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func parseSearchMode(raw string) (ports.SearchMode, error) {
	mode := ports.SearchMode(raw)
	switch mode {
	case ports.SearchLatest, ports.SearchTop:
		return mode, nil
	case "":
		return ports.SearchLatest, nil
	default:
		return "", fmt.Errorf("unsupported search mode %q", raw)
	}
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}
