package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/plinko/parameter"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

func rgbOf(c [3]int32) RGB {
	return RGB{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2])}
}

// Palette
var (
	RgbBackground = rgbOf(parameter.RgbBackground)
	RgbPin        = rgbOf(parameter.RgbPin)
	RgbBall       = rgbOf(parameter.RgbBall)
	RgbAccent     = rgbOf(parameter.RgbAccent)
	RgbText       = rgbOf(parameter.RgbText)
	RgbWin        = rgbOf(parameter.RgbWin)
	RgbLose       = rgbOf(parameter.RgbLose)
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Color converts to a tcell true color
func (c RGB) Color() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// style builds a foreground-on-background style
func style(fg, bg RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(fg.Color()).Background(bg.Color())
}
