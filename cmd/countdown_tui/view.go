package countdown_tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
	actionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	timerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// View implements tea.Model.
func (m Model) View() string {
	seconds := m.Remaining.Seconds()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Quickstart"))
	b.WriteString("\n")
	b.WriteString(actionStyle.Render(m.Gate.Action().Describe()))
	b.WriteString("\n")
	b.WriteString(timerStyle.Render(fmt.Sprintf("starting in %.1fs", seconds)))
	b.WriteString("  ")
	b.WriteString(progressBar(m.Remaining, m.Total))
	b.WriteString("\n")

	var help []string
	for _, binding := range m.KeyMap.ShortHelp() {
		help = append(help, fmt.Sprintf("%s %s", binding.Help().Key, binding.Help().Desc))
	}
	b.WriteString(helpStyle.Render(strings.Join(help, " · ")))

	return boxStyle.Render(b.String()) + "\n"
}

func progressBar(remaining, total time.Duration) string {
	const width = 20
	if total <= 0 {
		return ""
	}
	filled := int(float64(width) * float64(remaining) / float64(total))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}
