package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kx",
		Short:         "Konnex agent (kx): daily loyalty check-ins for many wallets",
		Long:          "kx signs in to the Konnex loyalty hub with each configured wallet, claims the daily check-in, completes the social post task and repeats every day at the scheduled time.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.AddCommand(newVersionCmd())

	app, err := wireApp()
	if err != nil {
		rootCmd.Args = cobra.ArbitraryArgs
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.log.Sync()
	}
	rootCmd.AddCommand(
		newAccountCmd(app),
		newRunCmd(app),
		newScheduleCmd(app),
	)

	return rootCmd
}
