package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/clock25/internal/clock"
	"github.com/abhisek/clock25/internal/router"
	"github.com/abhisek/clock25/internal/screens/countdown"
	"github.com/abhisek/clock25/internal/screens/shortcuts"
	"github.com/abhisek/clock25/internal/timer"
)

func newTestModel(t *testing.T) (AppModel, *timer.Engine) {
	t.Helper()
	e := timer.New(timer.WithClock(clock.NewFake()))
	t.Cleanup(e.Close)
	return newAppModel(Options{Engine: e}), e
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestInitListensForEngineEvents(t *testing.T) {
	m, e := newTestModel(t)
	cmd := m.Init()
	require.NotNil(t, cmd)

	e.Toggle()
	msg, ok := cmd().(countdown.EventMsg)
	require.True(t, ok)
	assert.Equal(t, timer.EventCommand, msg.Event.Kind)
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestEscAtRootIsNoop(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestHelpPushAndEscPop(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyPressMsg{Code: '?', Text: "?"})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	require.Equal(t, 2, m.router.Depth())
	_, ok := m.router.Active().(*shortcuts.Screen)
	assert.True(t, ok)
	assert.Equal(t, "Esc", m.footerHints()[0].Key)

	m, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	_, ok = cmd().(router.PopScreenMsg)
	require.True(t, ok)
	m, _ = update(t, m, cmd())
	assert.Equal(t, 1, m.router.Depth())
}

func TestEngineEventsReachCountdownUnderHelp(t *testing.T) {
	m, e := newTestModel(t)
	m.router.Push(shortcuts.New(countdown.DefaultKeyMap()))

	e.AdjustSessionLength(1)
	ev := <-e.Events()
	m, cmd := update(t, m, countdown.EventMsg{Event: ev})
	assert.NotNil(t, cmd, "countdown should keep listening")

	root, ok := m.router.Root().(*countdown.Screen)
	require.True(t, ok)
	assert.Equal(t, 26, root.Snapshot().SessionLength)
	assert.Equal(t, 2, m.router.Depth())
}

func TestFooterHintsFromCountdown(t *testing.T) {
	m, _ := newTestModel(t)
	hints := m.footerHints()
	require.NotEmpty(t, hints)
	assert.Equal(t, "Space", hints[0].Key)
	assert.Equal(t, "Start", hints[0].Description)
}

func TestWindowSizeRecorded(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.width)
	assert.Equal(t, 30, m.height)
}

func TestKeysReachCountdown(t *testing.T) {
	m, e := newTestModel(t)
	update(t, m, tea.KeyPressMsg{Code: tea.KeySpace})
	assert.True(t, e.IsRunning())
}
