package countdown

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/clock25/internal/timer"
	"github.com/abhisek/clock25/internal/ui/components"
	"github.com/abhisek/clock25/internal/ui/theme"
)

const progressWidth = 36

func (s *Screen) View(width, height int) string {
	snap := s.snap
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(s.Title()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderLengths(snap)))
	b.WriteString("\n\n")

	isBreak := snap.Phase == timer.PhaseBreak
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Inherit(theme.PhaseColor(isBreak)).
		Render(snap.PhaseLabel()))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(snap.Formatted()))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", components.Elapsed(snap.Remaining, snap.PhaseSeconds()), false, progressWidth)
	if isBreak {
		bar.Color = theme.Success
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderControls(snap)))

	if s.alarmPhase != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("Time's up! %s started.", s.alarmPhase)))
	}

	if s.stopped {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("Timer stopped."))
	}

	return b.String()
}

// renderLengths renders the break and session length columns side by side.
func renderLengths(snap timer.Snapshot) string {
	col := func(label string, value int, down, up string) string {
		return theme.Card.Width(24).Align(lipgloss.Center).Render(
			theme.Label.Render(label) + "\n" +
				theme.Hint.Render(down) + "  " +
				theme.Value.Render(fmt.Sprintf("%2d", value)) + "  " +
				theme.Hint.Render(up),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		col("Break Length", snap.BreakLength, "b", "B"),
		"  ",
		col("Session Length", snap.SessionLength, "s", "S"),
	)
}

func renderControls(snap timer.Snapshot) string {
	toggle := components.NewButton("space", "Start", false)
	if snap.IsRunning() {
		toggle = components.NewButton("space", "Pause", true)
	}
	reset := components.NewButton("r", "Reset", false)
	return lipgloss.JoinHorizontal(lipgloss.Center, toggle.View(), "  ", reset.View())
}
