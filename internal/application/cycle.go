package application

import (
	"context"
	"fmt"

	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/bnema/konnex-agent/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CycleRunner struct {
	repo      ports.AccountRepository
	processor AccountProcessor
	clock     ports.Clock
	log       *zap.Logger
	newID     func() string
}

func NewCycleRunner(repo ports.AccountRepository, processor AccountProcessor, clock ports.Clock, log *zap.Logger) *CycleRunner {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CycleRunner{repo: repo, processor: processor, clock: clock, log: log, newID: uuid.NewString}
}

// Run processes every account in file order, one at a time. A repository
// failure is logged and yields an empty report.
func (r *CycleRunner) Run(ctx context.Context) domain.CycleReport {
	report := domain.CycleReport{ID: r.newID(), StartedAt: r.clock.Now()}
	log := r.log.With(zap.String("cycle", report.ID))

	accounts, err := r.repo.List(ctx)
	if err != nil {
		log.Error("failed to load accounts", zap.Error(err))
		accounts = nil
	}
	log.Info("loaded accounts", zap.Int("count", len(accounts)))

	report.Results = make([]domain.AccountResult, 0, len(accounts))
	for i, account := range accounts {
		log.Info("processing account",
			zap.String("account", account.Label()),
			zap.String("progress", fmt.Sprintf("%d/%d", i+1, len(accounts))),
		)
		report.Results = append(report.Results, r.processor.Process(ctx, account))
	}

	report.FinishedAt = r.clock.Now()
	summary := report.Summary()
	log.Info("cycle finished",
		zap.Int("accounts", summary.Accounts),
		zap.Int("checkins", summary.Checkins),
		zap.Int("posts", summary.Posts),
		zap.Int64("points", summary.TotalPoints),
		zap.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)),
	)
	return report
}
