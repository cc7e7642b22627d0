package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	summaryadapter "github.com/bnema/konnex-agent/internal/adapters/render/summary"
	"github.com/bnema/konnex-agent/internal/application"
	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(app *app) *cobra.Command {
	var once bool
	var countdown bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the daily cycle now and then every day at the scheduled time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.cfg.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if once {
				report := app.runner.Run(cmd.Context())
				return printReport(out, app, report, time.Time{})
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := []application.DaemonOption{
				application.WithPresenter(func(report domain.CycleReport) {
					if err := printReport(out, app, report, app.schedule.Next(app.now())); err != nil {
						app.log.Warn("failed to render cycle summary", zap.Error(err))
					}
				}),
			}
			if countdown {
				errOut := cmd.ErrOrStderr()
				opts = append(opts, application.WithWaiter(func(ctx context.Context, until time.Time) error {
					return runCountdown(ctx, errOut, until, app.now)
				}))
			}

			daemon := application.NewDaemon(app.runner, app.schedule, app.clock, app.log, opts...)
			if err := daemon.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			app.log.Info("shutting down")
			return nil
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Run a single cycle and exit")
	cmd.Flags().BoolVar(&countdown, "countdown", true, "Show a countdown spinner while waiting for the next cycle")

	return cmd
}

func printReport(out io.Writer, app *app, report domain.CycleReport, next time.Time) error {
	rendered, err := app.reportRenderer(report, summaryadapter.RenderOptions{NextRun: next})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, rendered)
	return err
}
