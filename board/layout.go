// Package board computes the static pin field and prize bins
package board

import "math"

// Pin is a fixed collision point, immutable after the board is built
type Pin struct {
	X, Y float64
}

// Bin is a prize slot under the pin field
type Bin struct {
	Index      int
	CenterX    float64
	Multiplier float64
}

// Geometry holds the board constants a layout is derived from
type Geometry struct {
	Width      float64 // Wall to wall
	StartY     float64 // First pin row
	DropTop    float64 // Spawn height
	SpacingX   float64 // Pin spacing and bin width
	SpacingY   float64 // Row spacing
	PinRadius  float64
	ExitMargin float64 // Settle threshold below the row after the last
	BaseCount  int     // Pins in the top row
}

// CenterX returns the horizontal centre of the board
func (g Geometry) CenterX() float64 {
	return g.Width / 2
}

// BuildPins returns the pin field in row-major order
// Row r holds BaseCount+r pins centred on the board
func BuildPins(g Geometry, rows int) []Pin {
	if rows <= 0 {
		return nil
	}
	total := rows*g.BaseCount + rows*(rows-1)/2
	pins := make([]Pin, 0, total)

	for row := 0; row < rows; row++ {
		n := g.BaseCount + row
		y := g.StartY + float64(row)*g.SpacingY
		startX := g.CenterX() - float64(n-1)*g.SpacingX/2

		for i := 0; i < n; i++ {
			pins = append(pins, Pin{X: startX + float64(i)*g.SpacingX, Y: y})
		}
	}
	return pins
}

// BuildBinCenters returns the x of each of count equal-width slots centred under the board
func BuildBinCenters(g Geometry, count int) []float64 {
	if count <= 0 {
		return nil
	}
	w := g.SpacingX
	left := g.CenterX() - float64(count)*w/2

	centers := make([]float64, count)
	for i := range centers {
		centers[i] = left + float64(i)*w + w/2
	}
	return centers
}

// Layout is the built board: pins, bins and the derived heights the simulation uses
type Layout struct {
	Geometry Geometry
	Rows     int
	Pins     []Pin
	Bins     []Bin

	DropTop  float64 // Guidance progress 0
	LastRowY float64 // Guidance progress 1
	ExitY    float64 // Balls below this settle
	BinsLeft float64 // Left edge of bin 0
	BinWidth float64
}

// NewLayout builds pins and one bin per multiplier
func NewLayout(g Geometry, rows int, multipliers []float64) *Layout {
	centers := BuildBinCenters(g, len(multipliers))
	bins := make([]Bin, len(centers))
	for i, x := range centers {
		bins[i] = Bin{Index: i, CenterX: x, Multiplier: multipliers[i]}
	}

	l := &Layout{
		Geometry: g,
		Rows:     rows,
		Pins:     BuildPins(g, rows),
		Bins:     bins,
		DropTop:  g.DropTop,
		LastRowY: g.StartY + float64(rows-1)*g.SpacingY,
		ExitY:    g.StartY + float64(rows)*g.SpacingY + g.ExitMargin,
		BinWidth: g.SpacingX,
	}
	l.BinsLeft = g.CenterX() - float64(len(bins))*l.BinWidth/2
	return l
}

// BinCount returns the number of bins
func (l *Layout) BinCount() int {
	return len(l.Bins)
}

// Bin returns bin i, false when out of range
func (l *Layout) Bin(i int) (Bin, bool) {
	if i < 0 || i >= len(l.Bins) {
		return Bin{}, false
	}
	return l.Bins[i], true
}

// BinAt returns the slot containing x, false outside the bin strip
func (l *Layout) BinAt(x float64) (int, bool) {
	if l.BinWidth <= 0 {
		return 0, false
	}
	i := int(math.Floor((x - l.BinsLeft) / l.BinWidth))
	if i < 0 || i >= len(l.Bins) {
		return 0, false
	}
	return i, true
}

// BinsRight returns the right edge of the last bin
func (l *Layout) BinsRight() float64 {
	return l.BinsLeft + float64(len(l.Bins))*l.BinWidth
}

// Multipliers returns a copy of the payout table in bin order
func (l *Layout) Multipliers() []float64 {
	out := make([]float64, len(l.Bins))
	for i, b := range l.Bins {
		out[i] = b.Multiplier
	}
	return out
}
