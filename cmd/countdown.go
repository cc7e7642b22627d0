package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type countdownTickMsg time.Time

type countdownModel struct {
	spinner   spinner.Model
	until     time.Time
	now       func() time.Time
	remaining time.Duration
	done      bool
}

func newCountdownModel(until time.Time, now func() time.Time) countdownModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return countdownModel{
		spinner:   s,
		until:     until,
		now:       now,
		remaining: until.Sub(now()),
	}
}

func countdownTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}

func (m countdownModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, countdownTick())
}

func (m countdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case countdownTickMsg:
		m.remaining = m.until.Sub(m.now())
		if m.remaining <= 0 {
			m.done = true
			return m, tea.Quit
		}
		return m, countdownTick()
	default:
		return m, nil
	}
}

func (m countdownModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s Next cycle in %s", m.spinner.View(), formatRemaining(m.remaining))
}

// formatRemaining renders d as HH:MM:SS, rounding partial seconds up.
func formatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}

func runCountdown(ctx context.Context, output io.Writer, until time.Time, now func() time.Time) error {
	if !until.After(now()) {
		return nil
	}

	p := tea.NewProgram(
		newCountdownModel(until, now),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
