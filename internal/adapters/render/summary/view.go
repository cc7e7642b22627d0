package summary

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/konnex-agent/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type RenderOptions struct {
	// NextRun is shown under the totals when set.
	NextRun time.Time
}

const (
	colAccount = iota
	colAddress
	colCheckin
	colPost
	colPoints
	colStatus
)

func renderView(report domain.CycleReport, opts RenderOptions, s styles) string {
	summary := report.Summary()
	lines := []string{s.title.Render("Daily Cycle Summary")}

	if len(report.Results) == 0 {
		lines = append(lines, s.empty.Render("No accounts processed."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, resultsTable(report.Results, s))
	lines = append(lines, s.totals.Render(totalsLine(report, summary, s)))
	if !opts.NextRun.IsZero() {
		lines = append(lines, s.empty.Render("next run: "+opts.NextRun.Format("2006-01-02 15:04 MST")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func resultsTable(results []domain.AccountResult, s styles) string {
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		rows = append(rows, []string{
			domain.AccountLabel(result.Index),
			result.MaskedAddress,
			checkinLabel(result.Checkin),
			result.PostTask.Label(),
			fmt.Sprintf("%d", result.Points),
			statusLabel(result),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.border).
		Headers("Account", "Address", "Check-In", "Post", "Points", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.header
			}
			if row < 0 || row >= len(results) {
				return s.cell
			}
			return cellStyle(results[row], col, s)
		}).
		String()
}

func cellStyle(result domain.AccountResult, col int, s styles) lipgloss.Style {
	switch col {
	case colCheckin:
		if result.Checkin.Success {
			return s.ok
		}
		return s.failed
	case colPost:
		switch {
		case result.PostTask.Succeeded():
			return s.ok
		case result.PostTask == domain.PostOutcomeFailed:
			return s.failed
		default:
			return s.warning
		}
	case colStatus:
		if result.Success {
			return s.ok
		}
		return s.failed
	default:
		return s.cell
	}
}

func checkinLabel(outcome domain.CheckinOutcome) string {
	if outcome.Message == "" {
		return "-"
	}
	if !outcome.Success {
		return "Failed"
	}
	return outcome.Message
}

func statusLabel(result domain.AccountResult) string {
	if result.Success {
		return "Success"
	}
	if result.Error != "" {
		return "Failed: " + result.Error
	}
	return "Failed"
}

func totalsLine(report domain.CycleReport, summary domain.SessionSummary, s styles) string {
	succeeded := 0
	for _, result := range report.Results {
		if result.Success {
			succeeded++
		}
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderProgressBar(succeeded, summary.Accounts, 20, s),
		" ",
		fmt.Sprintf("accounts: %d  check-ins: %d  posts: %d  total points: %d",
			summary.Accounts, summary.Checkins, summary.Posts, summary.TotalPoints),
	)
}

func renderProgressBar(done, total, width int, s styles) string {
	if width <= 0 || total <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * float64(done) / float64(total)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}
