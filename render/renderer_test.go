package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/plinko/config"
	"github.com/lixenwraith/plinko/outcome"
	"github.com/lixenwraith/plinko/parameter"
	"github.com/lixenwraith/plinko/round"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestController(t *testing.T, balance int) *round.Controller {
	t.Helper()
	cfg := config.Default()
	cfg.Wallet.StartingBalance = balance
	return round.New(cfg, outcome.NewSeededSource(42), nil, nil)
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func cellFg(screen tcell.Screen, x, y int) tcell.Color {
	_, _, st, _ := screen.GetContent(x, y)
	fg, _, _ := st.Decompose()
	return fg
}

func cellBg(screen tcell.Screen, x, y int) tcell.Color {
	_, _, st, _ := screen.GetContent(x, y)
	_, bg, _ := st.Decompose()
	return bg
}

func TestDrawHUD(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	c := newTestController(t, 1000)

	NewRenderer(screen).Draw(c.Snapshot())

	assert.Contains(t, rowText(screen, 0), parameter.TitleText)
	assert.Contains(t, rowText(screen, 1), "BALANCE $1000")
	assert.Contains(t, rowText(screen, 1), "BET $10")
	assert.NotContains(t, rowText(screen, 1), "RTP")
	assert.Contains(t, rowText(screen, 23), "SPACE/CLICK drop")

	betCol := strings.Index(rowText(screen, 1), "BET")
	assert.Equal(t, RgbText.Color(), cellFg(screen, betCol, 1))
}

func TestDrawUnaffordableBetInLossColor(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	c := newTestController(t, 5)

	NewRenderer(screen).Draw(c.Snapshot())

	row := rowText(screen, 1)
	betCol := strings.Index(row, "BET $10")
	require.GreaterOrEqual(t, betCol, 0)
	assert.Equal(t, RgbLose.Color(), cellFg(screen, betCol, 1))
}

func TestDrawBoard(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	c := newTestController(t, 1000)
	r := NewRenderer(screen)
	r.Draw(c.Snapshot())

	vp, ok := NewViewport(c.Layout(), 80, 24)
	require.True(t, ok)

	pins := 0
	for y := vp.Top; y < vp.BinTop(); y++ {
		pins += strings.Count(rowText(screen, y), string(parameter.PinChar))
	}
	assert.Greater(t, pins, c.Layout().Rows, "expected several pins per row")

	labels := rowText(screen, vp.LabelRow())
	assert.Contains(t, labels, "1k")
	assert.Contains(t, labels, ".2")

	// Ball at the drop point
	b, ok := c.PlaceWager(10)
	require.True(t, ok)
	r.Draw(c.Snapshot())
	ch, _, _, _ := screen.GetContent(vp.Col(b.Pos.X), vp.Row(b.Pos.Y))
	assert.Equal(t, parameter.BallChar, ch)
	assert.Equal(t, RgbBall.Color(), cellFg(screen, vp.Col(b.Pos.X), vp.Row(b.Pos.Y)))
}

func TestDrawResultHighlight(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	c := newTestController(t, 1000)
	r := NewRenderer(screen)

	_, ok := c.SpawnWithTarget(10, 0)
	require.True(t, ok)
	for i := 0; i < parameter.MaxFlightTicks && c.ActiveCount() > 0; i++ {
		c.Advance(parameter.FrameUpdateInterval)
	}
	require.Zero(t, c.ActiveCount())

	r.Draw(c.Snapshot())

	assert.Contains(t, rowText(screen, parameter.TopMargin-1), "WIN! +$10000")
	assert.Contains(t, rowText(screen, 1), "BALANCE $10990")
	assert.Contains(t, rowText(screen, 1), "RTP")

	vp, _ := NewViewport(c.Layout(), 80, 24)
	base := RgbBackground.Blend(RgbAccent, 0.35)
	lit := base.Blend(RgbWin, parameter.HighlightAlpha)

	from, to := vp.BinSpan(0)
	assert.Equal(t, lit.Color(), cellBg(screen, to-1, vp.BinTop()))
	from1, to1 := vp.BinSpan(1)
	assert.Equal(t, base.Color(), cellBg(screen, to1-1, vp.BinTop()))
	assert.Less(t, from, from1)

	// Faded out: highlight and text gone
	c.Advance(parameter.ResultDisplayDuration)
	r.Draw(c.Snapshot())
	assert.NotContains(t, rowText(screen, parameter.TopMargin-1), "WIN")
	assert.NotContains(t, rowText(screen, parameter.TopMargin-2), "WIN")
	assert.Equal(t, base.Color(), cellBg(screen, to-1, vp.BinTop()))
}

func TestDrawResultRises(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	c := newTestController(t, 1000)
	r := NewRenderer(screen)

	_, ok := c.SpawnWithTarget(10, 10)
	require.True(t, ok)
	for i := 0; i < parameter.MaxFlightTicks && c.ActiveCount() > 0; i++ {
		c.Advance(parameter.FrameUpdateInterval)
	}
	r.Draw(c.Snapshot())
	assert.Contains(t, rowText(screen, parameter.TopMargin-1), "WIN +$2")

	c.Advance(parameter.ResultDisplayDuration * 3 / 4)
	r.Draw(c.Snapshot())
	assert.NotContains(t, rowText(screen, parameter.TopMargin-1), "WIN")
	assert.Contains(t, rowText(screen, parameter.TopMargin-1-parameter.ResultRiseCells), "WIN +$2")
}

func TestDrawTooSmall(t *testing.T) {
	screen := newTestScreen(t, 15, 6)
	c := newTestController(t, 1000)

	NewRenderer(screen).Draw(c.Snapshot())

	assert.Contains(t, rowText(screen, 3), tooSmallText[:15])
}
