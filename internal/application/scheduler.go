package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/bnema/konnex-agent/internal/ports"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultScheduleHour   = 7
	DefaultScheduleMinute = 30
)

// DailySchedule fires once a day at Hour:Minute in Location.
type DailySchedule struct {
	Hour     int
	Minute   int
	Location *time.Location
	cron     cron.Schedule
}

// NewDailySchedule accepts an IANA zone name; "" and "Local" use the host zone.
func NewDailySchedule(hour, minute int, timezone string) (DailySchedule, error) {
	if hour < 0 || hour > 23 {
		return DailySchedule{}, fmt.Errorf("%w: schedule hour %d out of range", domain.ErrUsage, hour)
	}
	if minute < 0 || minute > 59 {
		return DailySchedule{}, fmt.Errorf("%w: schedule minute %d out of range", domain.ErrUsage, minute)
	}

	timezone = strings.TrimSpace(timezone)
	if timezone == "" {
		timezone = "Local"
	}
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return DailySchedule{}, fmt.Errorf("%w: load timezone %q: %w", domain.ErrUsage, timezone, err)
	}

	spec, err := cron.ParseStandard(fmt.Sprintf("CRON_TZ=%s %d %d * * *", timezone, minute, hour))
	if err != nil {
		return DailySchedule{}, fmt.Errorf("%w: parse schedule: %w", domain.ErrUsage, err)
	}

	return DailySchedule{Hour: hour, Minute: minute, Location: location, cron: spec}, nil
}

// Next returns the first run strictly after now.
func (s DailySchedule) Next(now time.Time) time.Time {
	return s.cron.Next(now)
}

func (s DailySchedule) String() string {
	return fmt.Sprintf("%02d:%02d %s", s.Hour, s.Minute, s.Location)
}

type Scheduler interface {
	Next(now time.Time) time.Time
}

type Cycler interface {
	Run(ctx context.Context) domain.CycleReport
}

// Waiter blocks until the given time or until ctx is done.
type Waiter func(ctx context.Context, until time.Time) error

type Presenter func(report domain.CycleReport)

type Daemon struct {
	cycler   Cycler
	schedule Scheduler
	clock    ports.Clock
	present  Presenter
	wait     Waiter
	log      *zap.Logger
}

type DaemonOption func(*Daemon)

func WithPresenter(present Presenter) DaemonOption {
	return func(d *Daemon) { d.present = present }
}

func WithWaiter(wait Waiter) DaemonOption {
	return func(d *Daemon) { d.wait = wait }
}

func NewDaemon(cycler Cycler, schedule Scheduler, clock ports.Clock, log *zap.Logger, opts ...DaemonOption) *Daemon {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	d := &Daemon{cycler: cycler, schedule: schedule, clock: clock, log: log}
	d.wait = func(ctx context.Context, until time.Time) error {
		return d.clock.Sleep(ctx, until.Sub(d.clock.Now()))
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run alternates cycles and waits until ctx is canceled. A cycle in flight is
// never interrupted; cancellation is observed only while waiting.
func (d *Daemon) Run(ctx context.Context) error {
	for {
		d.runCycle(context.WithoutCancel(ctx))

		next := d.schedule.Next(d.clock.Now())
		d.log.Info("next cycle scheduled",
			zap.Time("at", next),
			zap.Duration("in", next.Sub(d.clock.Now()).Round(time.Second)),
		)

		if err := d.wait(ctx, next); err != nil && ctx.Err() == nil {
			d.log.Warn("wait failed, sleeping without display", zap.Error(err))
			_ = d.clock.Sleep(ctx, next.Sub(d.clock.Now()))
		}
		if ctx.Err() != nil {
			d.log.Info("daemon stopped")
			return ctx.Err()
		}
	}
}

func (d *Daemon) runCycle(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("cycle panicked", zap.Any("panic", r))
		}
	}()

	report := d.cycler.Run(ctx)
	if d.present != nil {
		d.present(report)
	}
}
