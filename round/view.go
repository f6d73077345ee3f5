package round

import (
	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/vmath"
)

// BallView is the render-facing copy of a ball
type BallView struct {
	Pos    vmath.Vec2
	Active bool
}

// View is a frame's read-only copy of everything a renderer draws
// Board data is shared with the controller and must not be modified
type View struct {
	Layout     *board.Layout
	Balance    int
	CurrentBet int
	CanAfford  bool
	Balls      []BallView
	Result     ResultDisplay
	SessionRTP float64
}

// Snapshot copies the state a renderer needs for one frame
func (c *Controller) Snapshot() View {
	balls := make([]BallView, len(c.state.Balls))
	for i, b := range c.state.Balls {
		balls[i] = BallView{Pos: b.Pos, Active: b.Active}
	}
	return View{
		Layout:     c.layout,
		Balance:    c.state.Balance,
		CurrentBet: c.state.CurrentBet(),
		CanAfford:  c.CanAfford(),
		Balls:      balls,
		Result:     c.result,
		SessionRTP: c.rtp.Get(),
	}
}
