package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/bnema/konnex-agent/internal/ports/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingProcessor struct {
	seen []int
}

func (p *recordingProcessor) Process(_ context.Context, account domain.Account) domain.AccountResult {
	p.seen = append(p.seen, account.Index)
	return domain.AccountResult{
		Index:    account.Index,
		Checkin:  domain.CheckinOutcome{Success: true, Message: "Success"},
		PostTask: domain.PostOutcomeAlreadyDone,
		Points:   int64(10 * (account.Index + 1)),
		Success:  true,
	}
}

type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time { return c.now }

func (c stubClock) Sleep(ctx context.Context, _ time.Duration) error { return ctx.Err() }

func TestCycleRunnerWithNoAccountsTouchesNothing(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	repo.EXPECT().List(mockAnyContext()).Return([]domain.Account{}, nil).Once()

	// Mocks without expectations fail the test if the workflow reaches them.
	workflow := NewWorkflow(mocks.NewMockConnector(t), mocks.NewMockSigner(t), NewVerifier(VerifierConfig{}, mocks.NewMockClock(t), fixedPick), zap.NewNop())
	runner := NewCycleRunner(repo, workflow, stubClock{now: time.Unix(0, 0)}, zap.NewNop())

	report := runner.Run(context.Background())

	assert.Empty(t, report.Results)
	assert.Equal(t, domain.SessionSummary{}, report.Summary())
}

func TestCycleRunnerTreatsLoadErrorAsEmpty(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	repo.EXPECT().List(mockAnyContext()).Return(nil, errors.New("accounts file must be a list of accounts")).Once()

	processor := &recordingProcessor{}
	report := NewCycleRunner(repo, processor, nil, zap.NewNop()).Run(context.Background())

	assert.Empty(t, report.Results)
	assert.Empty(t, processor.seen)
}

func TestCycleRunnerProcessesAccountsInOrder(t *testing.T) {
	repo := mocks.NewMockAccountRepository(t)
	repo.EXPECT().List(mockAnyContext()).Return([]domain.Account{
		{Index: 0, PrivateKey: "a"},
		{Index: 2, PrivateKey: "c"},
		{Index: 3, PrivateKey: "d"},
	}, nil).Once()

	started := time.Date(2026, 1, 2, 7, 30, 0, 0, time.UTC)
	processor := &recordingProcessor{}
	report := NewCycleRunner(repo, processor, stubClock{now: started}, zap.NewNop()).Run(context.Background())

	assert.Equal(t, []int{0, 2, 3}, processor.seen)
	require.Len(t, report.Results, 3)
	assert.Equal(t, started, report.StartedAt)
	_, err := uuid.Parse(report.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionSummary{Accounts: 3, Checkins: 3, Posts: 3, TotalPoints: 10 + 30 + 40}, report.Summary())
}
