package application

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDailyScheduleNext(t *testing.T) {
	t.Parallel()

	schedule, err := NewDailySchedule(7, 30, "UTC")
	require.NoError(t, err)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before run time is same day",
			now:  time.Date(2026, 5, 10, 7, 0, 0, 0, time.UTC),
			want: time.Date(2026, 5, 10, 7, 30, 0, 0, time.UTC),
		},
		{
			name: "after run time is next day",
			now:  time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC),
			want: time.Date(2026, 5, 11, 7, 30, 0, 0, time.UTC),
		},
		{
			name: "exactly at run time is next day",
			now:  time.Date(2026, 5, 10, 7, 30, 0, 0, time.UTC),
			want: time.Date(2026, 5, 11, 7, 30, 0, 0, time.UTC),
		},
		{
			name: "month rollover",
			now:  time.Date(2026, 5, 31, 23, 59, 0, 0, time.UTC),
			want: time.Date(2026, 6, 1, 7, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, tt.want.Equal(schedule.Next(tt.now)), "got %s", schedule.Next(tt.now))
		})
	}
}

func TestDailyScheduleUsesConfiguredZone(t *testing.T) {
	t.Parallel()

	schedule, err := NewDailySchedule(7, 30, "Asia/Jakarta")
	require.NoError(t, err)

	// 01:00 UTC is 08:00 in Jakarta, past the run time.
	next := schedule.Next(time.Date(2026, 5, 10, 1, 0, 0, 0, time.UTC))
	assert.True(t, time.Date(2026, 5, 11, 0, 30, 0, 0, time.UTC).Equal(next), "got %s", next)
	assert.Equal(t, "07:30 Asia/Jakarta", schedule.String())
}

func TestNewDailyScheduleRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := NewDailySchedule(24, 0, "UTC")
	assert.ErrorIs(t, err, domain.ErrUsage)
	_, err = NewDailySchedule(7, 60, "UTC")
	assert.ErrorIs(t, err, domain.ErrUsage)
	_, err = NewDailySchedule(7, 30, "Mars/Olympus")
	assert.ErrorIs(t, err, domain.ErrUsage)
}

type cyclerFunc func(ctx context.Context) domain.CycleReport

func (f cyclerFunc) Run(ctx context.Context) domain.CycleReport { return f(ctx) }

type fixedSchedule time.Time

func (s fixedSchedule) Next(time.Time) time.Time { return time.Time(s) }

func TestDaemonRunsCyclesUntilCanceledWhileWaiting(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var cycles atomic.Int32
	var presented atomic.Int32
	next := time.Date(2026, 5, 11, 7, 30, 0, 0, time.UTC)

	cycler := cyclerFunc(func(ctx context.Context) domain.CycleReport {
		cycles.Add(1)
		return domain.CycleReport{ID: "c"}
	})
	waits := 0
	daemon := NewDaemon(cycler, fixedSchedule(next), stubClock{now: next.Add(-time.Hour)}, zap.NewNop(),
		WithPresenter(func(domain.CycleReport) { presented.Add(1) }),
		WithWaiter(func(ctx context.Context, until time.Time) error {
			assert.Equal(t, next, until)
			waits++
			if waits == 2 {
				cancel()
				return ctx.Err()
			}
			return nil
		}),
	)

	err := daemon.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(2), cycles.Load())
	assert.Equal(t, int32(2), presented.Load())
}

func TestDaemonDetachesCycleFromCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var cycleErr error
	cycler := cyclerFunc(func(ctx context.Context) domain.CycleReport {
		cycleErr = ctx.Err()
		return domain.CycleReport{}
	})

	daemon := NewDaemon(cycler, fixedSchedule(time.Unix(100, 0)), stubClock{now: time.Unix(0, 0)}, zap.NewNop())

	err := daemon.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, cycleErr)
}

func TestDaemonSurvivesPanickingCycle(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := 0
	cycler := cyclerFunc(func(context.Context) domain.CycleReport {
		runs++
		if runs == 1 {
			panic("boom")
		}
		return domain.CycleReport{}
	})

	presented := 0
	waits := 0
	daemon := NewDaemon(cycler, fixedSchedule(time.Unix(100, 0)), stubClock{now: time.Unix(0, 0)}, zap.NewNop(),
		WithPresenter(func(domain.CycleReport) { presented++ }),
		WithWaiter(func(ctx context.Context, _ time.Time) error {
			waits++
			if waits == 2 {
				cancel()
			}
			return nil
		}),
	)

	err := daemon.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 2, waits)
	assert.Equal(t, 1, presented)
}
