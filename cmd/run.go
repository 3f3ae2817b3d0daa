package cmd

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/bnema/feedkeeper/internal/ingest"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	var profileID string
	var watch time.Duration

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Bootstrap a session and reconcile the feed",
		Long:  "run authenticates the profile, then pulls mentions and timeline through the dispatch queue and archives every novel item. With --watch it keeps reconciling at the given interval until interrupted.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), nil))

			feedClient, closeClient, err := wireProfileClient(cmd.Context(), app, profileID, wireOptions{
				credentials: true,
				logger:      logger,
			})
			if err != nil {
				return err
			}
			defer closeClient()

			if err := feedClient.Bootstrap(cmd.Context()); err != nil {
				return err
			}

			logResult := func(result ingest.Result) {
				logger.Info("reconcile pass finished",
					"candidates", result.Candidates,
					"created", result.Created,
					"skipped", result.Skipped,
					"resumed", result.Resumed,
					"fetched", result.Fetched,
				)
			}

			result, err := feedClient.Sync(cmd.Context())
			if err != nil {
				return err
			}
			logResult(result)

			if watch <= 0 {
				return nil
			}

			for {
				select {
				case <-cmd.Context().Done():
					return cmd.Context().Err()
				case <-time.After(watch + jitter(watch/10)):
				}

				result, err := feedClient.Sync(cmd.Context())
				if err != nil {
					if cmd.Context().Err() != nil {
						return cmd.Context().Err()
					}
					logger.Error("reconcile pass failed", "error", err)
					continue
				}
				logResult(result)
			}
		},
	}

	cmd.Flags().StringVar(&profileID, "profile", "", "Profile ID")
	cmd.Flags().DurationVar(&watch, "watch", 0, "Keep reconciling at this interval (0 runs once)")

	return cmd
}

// jitter spreads watch wakeups so long-running keepers drift apart.
func jitter(window time.Duration) time.Duration {
	if window <= 0 {
		return 0
	}
	return rand.N(window)
}
