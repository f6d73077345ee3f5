package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/plinko/config"
	"github.com/lixenwraith/plinko/round"
)

func TestViewportFits(t *testing.T) {
	layout := config.Default().Layout()

	_, ok := NewViewport(layout, 80, 24)
	assert.True(t, ok)
	_, ok = NewViewport(layout, layout.BinCount()-1, 24)
	assert.False(t, ok, "fewer columns than bins")
	_, ok = NewViewport(layout, 23, 24)
	assert.False(t, ok, "bins narrower than a column")
	_, ok = NewViewport(layout, 80, 7)
	assert.False(t, ok, "no room for the field")
}

func TestViewportMapping(t *testing.T) {
	layout := config.Default().Layout()
	vp, ok := NewViewport(layout, 80, 24)
	require.True(t, ok)

	assert.Equal(t, 0, vp.Col(-50))
	assert.Equal(t, 79, vp.Col(layout.Geometry.Width))
	assert.Equal(t, vp.Top, vp.Row(layout.DropTop))
	assert.Less(t, vp.Row(layout.LastRowY), vp.BinTop())
	assert.Equal(t, vp.LabelRow()-1, vp.Row(layout.ExitY))
	assert.Equal(t, vp.LabelRow()-1, vp.Row(layout.ExitY+500))

	// Pin rows stay distinct when there is a row per pin row
	prev := -1
	for r := 0; r < layout.Rows; r++ {
		pin := layout.Pins[r*(r+2*layout.Geometry.BaseCount-1)/2]
		row := vp.Row(pin.Y)
		assert.GreaterOrEqual(t, row, prev)
		prev = row
	}
}

func TestViewportBinSpansTile(t *testing.T) {
	layout := config.Default().Layout()
	for _, w := range []int{24, 40, 80, 200} {
		vp, ok := NewViewport(layout, w, 30)
		require.True(t, ok, "width %d", w)

		_, prevTo := vp.BinSpan(0)
		for i := 1; i < layout.BinCount(); i++ {
			from, to := vp.BinSpan(i)
			assert.GreaterOrEqual(t, from, prevTo, "width %d bin %d overlaps", w, i)
			assert.Greater(t, to, from)
			prevTo = to
		}
	}
}

func TestMultiplierLabels(t *testing.T) {
	tests := []struct {
		m     float64
		long  string
		short string
	}{
		{1000, "x1000", "1k"},
		{130, "x130", "130"},
		{26, "x26", "26"},
		{2, "x2", "2"},
		{0.5, "x0.5", ".5"},
		{0.2, "x0.2", ".2"},
		{0, "x0", "0"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.long, FormatMultiplier(tc.m))
		assert.Equal(t, tc.short, ShortMultiplier(tc.m))
	}

	assert.Equal(t, "x1000", binLabel(1000, 5))
	assert.Equal(t, "1k", binLabel(1000, 3))
	assert.Equal(t, "", binLabel(1000, 1))
	assert.Equal(t, "2", binLabel(2, 1))
}

func TestResultText(t *testing.T) {
	text, color := ResultText(round.ResultDisplay{AmountWon: 10000, Wager: 10})
	assert.Equal(t, "WIN! +$10000", text)
	assert.Equal(t, RgbWin, color)

	text, color = ResultText(round.ResultDisplay{AmountWon: 10, Wager: 10})
	assert.Equal(t, "PUSH", text)
	assert.Equal(t, RgbText, color)

	text, color = ResultText(round.ResultDisplay{AmountWon: 2, Wager: 10})
	assert.Equal(t, "WIN +$2", text)
	assert.Equal(t, RgbLose, color)
}

func TestBlend(t *testing.T) {
	a, b := RGB{0, 0, 0}, RGB{200, 100, 50}
	assert.Equal(t, a, a.Blend(b, 0))
	assert.Equal(t, b, a.Blend(b, 1))
	assert.Equal(t, RGB{100, 50, 25}, a.Blend(b, 0.5))
}
