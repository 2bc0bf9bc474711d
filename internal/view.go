package internal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Align(lipgloss.Center)

	timerDisplayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("69")).
				Bold(true)

	timerRunningStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82")).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 4)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	startButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("82")).
				BorderForeground(lipgloss.Color("82"))

	stopButtonStyle = buttonStyle.
			Foreground(lipgloss.Color("196")).
			BorderForeground(lipgloss.Color("196"))

	resetButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("252")).
				BorderForeground(lipgloss.Color("240"))

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	runningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)
)

func (m *Model) mainView() string {
	counting := m.Controller.Counting()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.labels.T("Stopwatch")))
	sb.WriteString("\n\n")

	if counting {
		sb.WriteString(timerRunningStyle.Render(m.Controller.Label()))
	} else {
		sb.WriteString(timerDisplayStyle.Render(m.Controller.Label()))
	}

	status := inactiveStyle.Render(m.labels.T("Stopped"))
	if counting {
		status = runningStyle.Render(m.labels.T("Running"))
	}
	sb.WriteString(fmt.Sprintf("\n%s\n\n", status))

	sb.WriteString(m.buttonsView())

	body := lipgloss.JoinVertical(lipgloss.Center,
		boxStyle.Render(lipgloss.NewStyle().Align(lipgloss.Center).Render(sb.String())),
		"",
		helpStyle.Render(m.helpText()),
	)

	return lipgloss.Place(
		m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		body,
	)
}

func (m *Model) buttonsView() string {
	toggle := startButtonStyle.Render(m.labels.T("Start"))
	if m.Controller.Counting() {
		toggle = stopButtonStyle.Render(m.labels.T("Stop"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		toggle,
		"  ",
		resetButtonStyle.Render(m.labels.T("Reset")),
	)
}

func (m *Model) helpText() string {
	toggle := m.labels.T("Start")
	if m.Controller.Counting() {
		toggle = m.labels.T("Stop")
	}
	return fmt.Sprintf("%s: Enter/s | %s: r | %s: q", toggle, m.labels.T("Reset"), m.labels.T("Quit"))
}
