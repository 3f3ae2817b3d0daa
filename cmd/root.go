package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fk",
		Short:         "Feedkeeper (fk): keep a feed session alive and archive what it sees",
		Long:          "fk (Feedkeeper) maintains logged-in feed sessions, funnels every API call through a paced retry queue, and keeps a durable archive of the items your timeline and mentions surface.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newProfileCmd(app),
		newAuthCmd(app),
		newLoginCmd(app),
		newRunCmd(app),
		newFetchCmd(app),
		newSearchCmd(app),
		newStatusCmd(app),
	)

	return rootCmd
}
