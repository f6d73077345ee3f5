package game

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/plinko/audio"
	"github.com/lixenwraith/plinko/config"
	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/outcome"
	"github.com/lixenwraith/plinko/parameter"
	"github.com/lixenwraith/plinko/round"
)

type fixture struct {
	screen tcell.SimulationScreen
	clock  *engine.MockTimeProvider
	ctrl   *round.Controller
	game   *Game
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	ctrl := round.New(config.Default(), outcome.NewSeededSource(7), nil, nil)
	sounds := audio.NewSoundManager(nil, clock, nil)
	ctrl.AddListener(sounds)

	return &fixture{
		screen: screen,
		clock:  clock,
		ctrl:   ctrl,
		game:   New(screen, ctrl, sounds, clock, nil),
	}
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestQuitKeys(t *testing.T) {
	f := newFixture(t)
	for _, ev := range []tcell.Event{key(tcell.KeyEscape), key(tcell.KeyCtrlC), char('q'), char('Q')} {
		assert.False(t, f.game.HandleEvent(ev))
	}
	assert.True(t, f.game.HandleEvent(char('x')))
}

func TestDropKeys(t *testing.T) {
	f := newFixture(t)

	assert.True(t, f.game.HandleEvent(char(' ')))
	assert.Equal(t, 1, f.ctrl.ActiveCount())
	assert.Equal(t, 990, f.ctrl.Balance())

	assert.True(t, f.game.HandleEvent(key(tcell.KeyEnter)))
	assert.Equal(t, 2, f.ctrl.ActiveCount())
	assert.Equal(t, 980, f.ctrl.Balance())
}

func TestBetKeys(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, 10, f.ctrl.CurrentBet())

	f.game.HandleEvent(key(tcell.KeyUp))
	assert.Equal(t, 25, f.ctrl.CurrentBet())
	f.game.HandleEvent(char('k'))
	assert.Equal(t, 50, f.ctrl.CurrentBet())
	f.game.HandleEvent(key(tcell.KeyDown))
	f.game.HandleEvent(char('j'))
	f.game.HandleEvent(char('j'))
	f.game.HandleEvent(char('j'))
	assert.Equal(t, 1, f.ctrl.CurrentBet())
}

func TestMouseDropsOnPressOnly(t *testing.T) {
	f := newFixture(t)

	f.game.HandleEvent(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone))
	f.game.HandleEvent(tcell.NewEventMouse(11, 10, tcell.Button1, tcell.ModNone)) // drag
	assert.Equal(t, 1, f.ctrl.ActiveCount())

	f.game.HandleEvent(tcell.NewEventMouse(11, 10, tcell.ButtonNone, tcell.ModNone))
	f.game.HandleEvent(tcell.NewEventMouse(11, 10, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 2, f.ctrl.ActiveCount())

	f.game.HandleEvent(tcell.NewEventMouse(11, 10, tcell.Button2, tcell.ModNone))
	assert.Equal(t, 2, f.ctrl.ActiveCount())
}

func TestMuteKey(t *testing.T) {
	f := newFixture(t)
	f.game.HandleEvent(char('m'))
	assert.True(t, f.game.sounds.Muted())
	f.game.HandleEvent(char('m'))
	assert.False(t, f.game.sounds.Muted())
}

func TestFrameAdvancesAndDraws(t *testing.T) {
	f := newFixture(t)
	f.game.HandleEvent(char(' '))
	b := f.ctrl.Balls()[0]

	f.clock.Advance(parameter.FrameUpdateInterval)
	f.game.Frame()

	assert.Equal(t, 1, b.Ticks)
	assert.Greater(t, b.Pos.Y, f.ctrl.Layout().DropTop)

	var title strings.Builder
	for x := 0; x < 80; x++ {
		ch, _, _, _ := f.screen.GetContent(x, 0)
		title.WriteRune(ch)
	}
	assert.Contains(t, title.String(), parameter.TitleText)
}

func TestFrameClampsStalls(t *testing.T) {
	f := newFixture(t)
	_, ok := f.ctrl.SpawnWithTarget(10, 0)
	require.True(t, ok)
	for i := 0; i < parameter.MaxFlightTicks && f.ctrl.ActiveCount() > 0; i++ {
		f.clock.Advance(parameter.FrameUpdateInterval)
		f.game.Frame()
	}
	require.True(t, f.ctrl.Result().Visible())

	// A long stall only eats MaxFrameDelta of the result timer
	f.clock.Advance(time.Minute)
	f.game.Frame()
	r := f.ctrl.Result()
	assert.True(t, r.Visible())
	assert.Equal(t, r.Duration-parameter.MaxFrameDelta, r.Remaining)
}

func TestRunQuitsOnKey(t *testing.T) {
	f := newFixture(t)

	done := make(chan error, 1)
	go func() { done <- f.game.Run(context.Background()) }()

	require.NoError(t, f.screen.PostEvent(char(' ')))
	require.NoError(t, f.screen.PostEvent(char('q')))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit key")
	}
}

func TestRunStopsOnContext(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- f.game.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
