// Package render draws the board, balls and HUD onto a tcell screen
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/plinko/parameter"
	"github.com/lixenwraith/plinko/round"
)

const tooSmallText = "enlarge terminal"

// Renderer draws one frame per call from a controller snapshot
type Renderer struct {
	screen tcell.Screen
	bg     tcell.Style
}

// NewRenderer draws onto screen; the caller owns Init and Fini
func NewRenderer(screen tcell.Screen) *Renderer {
	bg := style(RgbText, RgbBackground)
	screen.SetStyle(bg)
	return &Renderer{screen: screen, bg: bg}
}

// Draw renders v and shows the frame
func (r *Renderer) Draw(v round.View) {
	w, h := r.screen.Size()
	r.screen.Fill(' ', r.bg)

	vp, ok := NewViewport(v.Layout, w, h)
	if !ok {
		r.drawCentered(h/2, w, tooSmallText, style(RgbText, RgbBackground))
		r.screen.Show()
		return
	}

	r.drawHUD(v, w)
	r.drawBins(v, vp)
	r.drawPins(v, vp)
	r.drawBalls(v, vp)
	r.drawCentered(h-1, w, parameter.InstructionText, style(RgbAccent.Blend(RgbText, 0.5), RgbBackground))

	r.screen.Show()
}

// drawHUD draws title, balance, bet and the rising result line
func (r *Renderer) drawHUD(v round.View, w int) {
	r.drawCentered(0, w, parameter.TitleText, style(RgbBall, RgbBackground).Bold(true))

	r.drawText(1, 1, fmt.Sprintf("BALANCE $%d", v.Balance), style(RgbText, RgbBackground))

	betColor := RgbText
	if !v.CanAfford {
		betColor = RgbLose
	}
	bet := fmt.Sprintf("BET $%d", v.CurrentBet)
	r.drawText(w-1-len(bet), 1, bet, style(betColor, RgbBackground))

	if v.SessionRTP > 0 {
		r.drawCentered(1, w, fmt.Sprintf("RTP %.1f%%", v.SessionRTP*100), style(RgbAccent.Blend(RgbText, 0.4), RgbBackground))
	}

	res := v.Result
	if !res.Visible() {
		return
	}
	text, color := ResultText(res)
	f := res.Fraction()
	rise := min(int((1-f)*float64(parameter.ResultRiseCells+1)), parameter.ResultRiseCells)
	row := parameter.TopMargin - 1 - rise
	r.drawCentered(row, w, text, style(RgbBackground.Blend(color, f), RgbBackground).Bold(true))
}

// drawBins fills the bin strip, walls, highlight and labels
func (r *Renderer) drawBins(v round.View, vp Viewport) {
	wall := style(RgbAccent, RgbBackground)
	res := v.Result

	for i, b := range v.Layout.Bins {
		from, to := vp.BinSpan(i)

		bg := RgbBackground.Blend(RgbAccent, 0.35)
		if res.Visible() && res.Bin == i {
			bg = bg.Blend(outcomeColor(res.Outcome()), parameter.HighlightAlpha*res.Fraction())
		}
		fill := style(RgbText, bg)
		for row := vp.BinTop(); row < vp.LabelRow(); row++ {
			for col := from; col < to; col++ {
				r.screen.SetContent(col, row, ' ', nil, fill)
			}
			if to-from > 1 {
				r.screen.SetContent(from, row, parameter.WallChar, nil, wall.Background(bg.Color()))
			}
		}

		width := to - from
		if width > 1 {
			width-- // Wall column
		}
		label := binLabel(b.Multiplier, width)
		if label == "" {
			continue
		}
		start := to - width + (width-len(label))/2
		r.drawText(start, vp.LabelRow(), label, style(labelColor(b.Multiplier), RgbBackground))
	}
}

func (r *Renderer) drawPins(v round.View, vp Viewport) {
	st := style(RgbPin, RgbBackground)
	for _, p := range v.Layout.Pins {
		r.screen.SetContent(vp.Col(p.X), vp.Row(p.Y), parameter.PinChar, nil, st)
	}
}

// drawBalls keeps the cell background so balls in the bin strip stay on its colour
func (r *Renderer) drawBalls(v round.View, vp Viewport) {
	for _, b := range v.Balls {
		if !b.Active || math.IsNaN(b.Pos.X) || math.IsNaN(b.Pos.Y) {
			continue
		}
		col, row := vp.Col(b.Pos.X), vp.Row(b.Pos.Y)
		_, _, under, _ := r.screen.GetContent(col, row)
		_, bg, _ := under.Decompose()
		r.screen.SetContent(col, row, parameter.BallChar, nil, tcell.StyleDefault.Foreground(RgbBall.Color()).Background(bg))
	}
}

func (r *Renderer) drawText(x, y int, s string, st tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, st)
		x++
	}
}

func (r *Renderer) drawCentered(y, w int, s string, st tcell.Style) {
	n := len([]rune(s))
	r.drawText(max((w-n)/2, 0), y, s, st)
}
