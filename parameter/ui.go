package parameter

// HUD layout, in terminal rows
const (
	// TopMargin holds title, balance/bet boxes and the result line
	TopMargin = 4

	// BottomMargin holds bin labels and the instruction line
	BottomMargin = 2

	// BinAreaHeight is the board-unit depth of the bin strip below the last row
	BinAreaHeight = 40.0
)

// HUD text
const (
	TitleText       = "P L I N K O"
	InstructionText = "SPACE/CLICK drop • UP/DOWN bet • Q quit"
)

// Glyphs
const (
	PinChar  = '·'
	BallChar = '●'
	WallChar = '│'
)

// RGB palette
var (
	RgbBackground = [3]int32{0x18, 0x18, 0x18}
	RgbPin        = [3]int32{180, 180, 180}
	RgbBall       = [3]int32{255, 203, 0}
	RgbAccent     = [3]int32{80, 80, 80}
	RgbText       = [3]int32{245, 245, 245}
	RgbWin        = [3]int32{46, 204, 113}
	RgbLose       = [3]int32{231, 76, 60}
)

// HighlightAlpha is the peak blend of the result colour into a highlighted bin
const HighlightAlpha = 150.0 / 255.0

// ResultRiseCells is how many rows the result text drifts up over its lifetime
const ResultRiseCells = 1
