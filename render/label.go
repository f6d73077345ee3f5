package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/plinko/round"
)

// FormatMultiplier renders a bin label such as x1000 or x0.2
func FormatMultiplier(m float64) string {
	return "x" + strconv.FormatFloat(m, 'f', -1, 64)
}

// ShortMultiplier is the narrow bin label: 1k, 130, .5
func ShortMultiplier(m float64) string {
	switch {
	case m >= 1000 && float64(int(m/1000))*1000 == m:
		return strconv.Itoa(int(m/1000)) + "k"
	case m >= 1:
		return strconv.FormatFloat(m, 'f', -1, 64)
	case m <= 0:
		return "0"
	default:
		return strings.TrimPrefix(strconv.FormatFloat(m, 'f', -1, 64), "0")
	}
}

// binLabel picks the widest label that fits in width cells, empty if none does
func binLabel(m float64, width int) string {
	if s := FormatMultiplier(m); len(s) <= width {
		return s
	}
	if s := ShortMultiplier(m); len(s) <= width {
		return s
	}
	return ""
}

// labelColor ranks a multiplier: jackpot gold, profit green, the rest red
func labelColor(m float64) RGB {
	switch {
	case m >= 100:
		return RgbBall
	case m >= 1:
		return RgbWin
	default:
		return RgbLose
	}
}

// ResultText is the HUD line for a settled result and its colour
// A payout below the wager is still reported as WIN in the loss colour, PUSH when equal
func ResultText(r round.ResultDisplay) (string, RGB) {
	switch r.Outcome() {
	case round.Win:
		return fmt.Sprintf("WIN! +$%d", r.AmountWon), RgbWin
	case round.Push:
		return "PUSH", RgbText
	default:
		return fmt.Sprintf("WIN +$%d", r.AmountWon), RgbLose
	}
}

// outcomeColor is the highlight colour for a result bin
func outcomeColor(o round.Outcome) RGB {
	switch o {
	case round.Win:
		return RgbWin
	case round.Push:
		return RgbText
	default:
		return RgbLose
	}
}
