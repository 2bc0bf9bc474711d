package internal

import (
	"testing"
	"time"

	"stopwatch_tui/internal/i18n"
	"stopwatch_tui/internal/stopwatch"
	"stopwatch_tui/internal/timer"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func newTestModel(t *testing.T, lang string) (*Model, *timer.Manual, *stepClock) {
	t.Helper()
	sched := timer.NewManual()
	clock := &stepClock{now: time.Date(2024, 5, 8, 9, 30, 0, 0, time.UTC)}
	ctrl := stopwatch.New(stopwatch.NewMemoryStore(), sched, stopwatch.WithClock(clock))
	m := NewModel(ctrl, i18n.New(lang), zerolog.Nop())
	require.Nil(t, m.Init())
	return m, sched, clock
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeysDriveController(t *testing.T) {
	m, sched, clock := newTestModel(t, "en")
	assert.Contains(t, m.View(), "00:00:00")
	assert.Contains(t, m.View(), "Start")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.Controller.Counting())
	assert.True(t, sched.Active())
	assert.Contains(t, m.View(), "Running")

	clock.now = clock.now.Add(75 * time.Second)
	sched.Fire()
	assert.Contains(t, m.View(), "00:01:15")

	m.Update(runes("s"))
	assert.False(t, m.Controller.Counting())

	m.Update(runes("r"))
	assert.Equal(t, stopwatch.ZeroLabel, m.Controller.Label())
	assert.Contains(t, m.View(), "00:00:00")
}

func TestTickMessageRunsFire(t *testing.T) {
	m, _, _ := newTestModel(t, "en")

	fired := false
	_, cmd := m.Update(MsgTick{Fire: func() { fired = true }})
	assert.Nil(t, cmd)
	assert.True(t, fired)

	_, cmd = m.Update(MsgTick{})
	assert.Nil(t, cmd)
}

func TestQuitKeys(t *testing.T) {
	m, _, _ := newTestModel(t, "en")
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, msg.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestQuitLeavesRunningStatePersisted(t *testing.T) {
	m, sched, _ := newTestModel(t, "en")
	m.Update(runes("s"))
	m.Update(runes("q"))
	assert.True(t, m.Controller.Counting())
	assert.True(t, sched.Active())
}

func TestViewUsesTranslatedLabels(t *testing.T) {
	m, _, _ := newTestModel(t, "pt")
	view := m.View()
	assert.Contains(t, view, "Iniciar")
	assert.Contains(t, view, "Zerar")

	m.Update(runes("s"))
	assert.Contains(t, m.View(), "Parar")
}

func TestWindowSize(t *testing.T) {
	m, _, _ := newTestModel(t, "en")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.Width)
	assert.Equal(t, 40, m.Height)
	assert.Contains(t, m.View(), "00:00:00")
}
