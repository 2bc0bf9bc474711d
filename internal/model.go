package internal

import (
	"stopwatch_tui/internal/i18n"
	"stopwatch_tui/internal/stopwatch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// MsgTick carries one firing of the refresh tick onto the update loop.
type MsgTick struct {
	Fire func()
}

type Model struct {
	Controller *stopwatch.Controller
	Width      int
	Height     int

	labels *i18n.Translator
	log    zerolog.Logger
}

func NewModel(ctrl *stopwatch.Controller, labels *i18n.Translator, log zerolog.Logger) *Model {
	return &Model{
		Controller: ctrl,
		Width:      80,
		Height:     24,
		labels:     labels,
		log:        log,
	}
}

// Init rehydrates the stopwatch when the view first appears.
func (m *Model) Init() tea.Cmd {
	m.Controller.OnAppear()
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgTick:
		if msg.Fire != nil {
			msg.Fire()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	return m.mainView()
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.log.Debug().Bool("counting", m.Controller.Counting()).Msg("quit")
		return m, tea.Quit
	case "enter", " ", "space", "s":
		m.Controller.StartStop()
	case "r":
		m.Controller.Reset()
	}
	return m, nil
}
