package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScheduleCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Inspect the daily run schedule",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "next",
		Short: "Print the next scheduled cycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			next := app.schedule.Next(app.now())
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "next run: %s (daily at %s)\n", next.Format("2006-01-02 15:04 MST"), app.schedule)
			return err
		},
	})

	return cmd
}
