package domain

import "time"

type CheckinOutcome struct {
	Success bool
	Message string
}

type PostOutcome string

const (
	PostOutcomePending      PostOutcome = ""
	PostOutcomeCompleted    PostOutcome = "completed"
	PostOutcomeAlreadyDone  PostOutcome = "already_done"
	PostOutcomeTimeout      PostOutcome = "timeout"
	PostOutcomeSkipped      PostOutcome = "skipped"
	PostOutcomeRuleNotFound PostOutcome = "rule_not_found"
	PostOutcomeFailed       PostOutcome = "failed"
)

func (o PostOutcome) Succeeded() bool {
	return o == PostOutcomeCompleted || o == PostOutcomeAlreadyDone
}

func (o PostOutcome) Label() string {
	switch o {
	case PostOutcomeCompleted:
		return "Posted"
	case PostOutcomeAlreadyDone:
		return "Already Done"
	case PostOutcomeTimeout:
		return "Timeout"
	case PostOutcomeSkipped:
		return "Skipped"
	case PostOutcomeRuleNotFound:
		return "Rule Not Found"
	case PostOutcomeFailed:
		return "Failed"
	default:
		return "-"
	}
}

type AccountResult struct {
	Index         int
	MaskedAddress string
	Checkin       CheckinOutcome
	PostTask      PostOutcome
	Points        int64
	Success       bool
	Error         string
}

type CycleReport struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Results    []AccountResult
}

func (r CycleReport) Summary() SessionSummary {
	return Summarize(r.Results)
}

type SessionSummary struct {
	Accounts    int
	Checkins    int
	Posts       int
	TotalPoints int64
}

func Summarize(results []AccountResult) SessionSummary {
	summary := SessionSummary{Accounts: len(results)}
	for _, result := range results {
		if result.Checkin.Success {
			summary.Checkins++
		}
		if result.PostTask.Succeeded() {
			summary.Posts++
		}
		summary.TotalPoints += result.Points
	}
	return summary
}
