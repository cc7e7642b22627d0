package summary

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCycleReport(t *testing.T) {
	report := domain.CycleReport{
		ID: "cycle-1",
		Results: []domain.AccountResult{
			{
				Index:         0,
				MaskedAddress: "0x2c75******a65c23",
				Checkin:       domain.CheckinOutcome{Success: true, Message: "Success"},
				PostTask:      domain.PostOutcomeCompleted,
				Points:        150,
				Success:       true,
			},
			{
				Index:         1,
				MaskedAddress: "0xAbCd******123456",
				Checkin:       domain.CheckinOutcome{Success: true, Message: "Done"},
				PostTask:      domain.PostOutcomeAlreadyDone,
				Points:        40,
				Success:       true,
			},
			{
				Index:         2,
				MaskedAddress: "N/A",
				Error:         "invalid private key",
			},
		},
	}
	next := time.Date(2026, 5, 11, 7, 30, 0, 0, time.UTC)

	output, err := Render(report, RenderOptions{NextRun: next})
	require.NoError(t, err)

	assert.Contains(t, output, "Daily Cycle Summary")
	for _, header := range []string{"Account", "Address", "Check-In", "Post", "Points", "Status"} {
		assert.Contains(t, output, header)
	}
	assert.Contains(t, output, "Acc 1")
	assert.Contains(t, output, "0x2c75******a65c23")
	assert.Contains(t, output, "Posted")
	assert.Contains(t, output, "Already Done")
	assert.Contains(t, output, "Done")
	assert.Contains(t, output, "Failed: invalid private key")
	assert.Contains(t, output, "accounts: 3  check-ins: 2  posts: 2  total points: 190")
	assert.Contains(t, output, "next run: 2026-05-11 07:30 UTC")
}

func TestRenderEmptyReport(t *testing.T) {
	output, err := Render(domain.CycleReport{}, RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "No accounts processed.")
	assert.NotContains(t, output, "next run")
}

func TestRenderProgressBarProportions(t *testing.T) {
	s := newStyles()

	assert.Equal(t, "["+strings.Repeat("=", 10)+strings.Repeat("-", 10)+"]", renderProgressBar(1, 2, 20, s))
	assert.Equal(t, "["+strings.Repeat("=", 4)+"]", renderProgressBar(3, 3, 4, s))
	assert.Empty(t, renderProgressBar(0, 0, 20, s))
}
