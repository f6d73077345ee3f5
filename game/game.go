// Package game runs the interactive loop: terminal input, fixed-rate frames and rendering
package game

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/plinko/audio"
	"github.com/lixenwraith/plinko/engine"
	"github.com/lixenwraith/plinko/parameter"
	"github.com/lixenwraith/plinko/render"
	"github.com/lixenwraith/plinko/round"
)

// Game binds a screen to a round controller
type Game struct {
	screen   tcell.Screen
	ctrl     *round.Controller
	renderer *render.Renderer
	sounds   *audio.SoundManager
	timer    *engine.FrameTimer
	log      *zap.Logger

	// Mouse buttons held at the previous mouse event, for press detection
	buttons tcell.ButtonMask
	frames  uint64
}

// New creates a game; sounds may be nil
func New(screen tcell.Screen, ctrl *round.Controller, sounds *audio.SoundManager, clock engine.Clock, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		screen:   screen,
		ctrl:     ctrl,
		renderer: render.NewRenderer(screen),
		sounds:   sounds,
		timer:    engine.NewFrameTimer(clock, parameter.MaxFrameDelta),
		log:      log.Named("game"),
	}
}

// Run processes input and frames until quit is requested or ctx is done
func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, parameter.EventQueueSize)
	pollErr := make(chan error, 1)
	go g.poll(ctx, events, pollErr)

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	g.screen.EnableMouse()
	g.timer.Reset()
	g.Frame()
	g.log.Info("session started", zap.Int("balance", g.ctrl.Balance()))

	for {
		select {
		case <-ctx.Done():
			g.logEnd("context done")
			return nil

		case err := <-pollErr:
			return err

		case ev := <-events:
			if !g.HandleEvent(ev) {
				g.logEnd("quit")
				return nil
			}

		case <-ticker.C:
			g.Frame()
		}
	}
}

// poll forwards terminal events; a nil event means the screen was finalized
func (g *Game) poll(ctx context.Context, events chan<- tcell.Event, errs chan<- error) {
	defer func() {
		if r := recover(); r != nil {
			errs <- fmt.Errorf("event poller crashed: %v\n%s", r, debug.Stack())
		}
	}()

	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// HandleEvent applies one input event, false when the player quits
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev)

	case *tcell.EventMouse:
		pressed := ev.Buttons() &^ g.buttons
		g.buttons = ev.Buttons()
		if pressed&tcell.Button1 != 0 {
			g.drop()
		}

	case *tcell.EventResize:
		g.screen.Sync()
		g.renderer.Draw(g.ctrl.Snapshot())
	}
	return true
}

func (g *Game) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		g.drop()
	case tcell.KeyUp:
		g.ctrl.IncreaseBet()
	case tcell.KeyDown:
		g.ctrl.DecreaseBet()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			g.drop()
		case 'k':
			g.ctrl.IncreaseBet()
		case 'j':
			g.ctrl.DecreaseBet()
		case 'm':
			if g.sounds != nil {
				g.log.Debug("mute toggled", zap.Bool("muted", g.sounds.ToggleMute()))
			}
		}
	}
	return true
}

func (g *Game) drop() {
	g.ctrl.RequestDrop()
}

// Frame advances the session by the elapsed clock time and draws it
func (g *Game) Frame() {
	g.ctrl.Advance(g.timer.Delta())
	g.renderer.Draw(g.ctrl.Snapshot())
	g.frames++
}

func (g *Game) logEnd(reason string) {
	stats := g.ctrl.Stats()
	g.log.Info("session ended",
		zap.String("reason", reason),
		zap.Uint64("frames", g.frames),
		zap.Int("balance", g.ctrl.Balance()),
		zap.Any("metrics", stats.IntSnapshot()),
		zap.Float64("rtp", stats.ReturnToPlayer()),
	)
}
