package render

import (
	"math"

	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/parameter"
)

// Minimum playfield, in cells
const (
	minFieldRows = 4
	binRowsDiv   = 8 // One bin row per this many field rows
)

// Viewport maps board coordinates onto the terminal grid
// The pin zone spans the rows above the bin strip; anything below the last pin row lands in the strip
type Viewport struct {
	Cols    int
	Top     int // First field row
	PinRows int
	BinRows int

	layout *board.Layout
	y0, y1 float64 // Pin zone in board units
}

// NewViewport fits layout into a screen of w by h cells; ok is false when it does not fit
// Every bin needs at least one column of its own
func NewViewport(layout *board.Layout, w, h int) (Viewport, bool) {
	field := h - parameter.TopMargin - parameter.BottomMargin
	if field < minFieldRows || w < 1 || float64(w)*layout.BinWidth < layout.Geometry.Width {
		return Viewport{}, false
	}

	binRows := max(1, field/binRowsDiv)
	half := layout.Geometry.SpacingY / 2
	return Viewport{
		Cols:    w,
		Top:     parameter.TopMargin,
		PinRows: field - binRows,
		BinRows: binRows,
		layout:  layout,
		y0:      layout.DropTop - half,
		y1:      layout.LastRowY + half,
	}, true
}

// Col maps a board x to a column, clamped to the screen
func (v Viewport) Col(x float64) int {
	c := int(math.Floor(x / v.layout.Geometry.Width * float64(v.Cols)))
	return min(max(c, 0), v.Cols-1)
}

// Row maps a board y to a screen row, clamped to the field
func (v Viewport) Row(y float64) int {
	if y <= v.y1 {
		f := (y - v.y0) / (v.y1 - v.y0)
		r := int(math.Floor(f * float64(v.PinRows)))
		return v.Top + min(max(r, 0), v.PinRows-1)
	}
	f := (y - v.y1) / (v.layout.ExitY - v.y1)
	r := int(math.Floor(f * float64(v.BinRows)))
	return v.BinTop() + min(max(r, 0), v.BinRows-1)
}

// BinTop is the first row of the bin strip
func (v Viewport) BinTop() int {
	return v.Top + v.PinRows
}

// LabelRow is the row under the bin strip
func (v Viewport) LabelRow() int {
	return v.BinTop() + v.BinRows
}

// BinSpan returns the half-open column range of bin i
func (v Viewport) BinSpan(i int) (from, to int) {
	l := v.layout
	from = v.Col(l.BinsLeft + float64(i)*l.BinWidth)
	to = v.Col(l.BinsLeft + float64(i+1)*l.BinWidth)
	return from, max(to, from+1)
}
