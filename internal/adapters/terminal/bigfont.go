package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// glyphRows is the height of every big-clock glyph.
const glyphRows = 5

// glyphs draws 0-9 three cells wide and the colon one cell wide.
var glyphs = map[rune][glyphRows]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", " ██", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", " █ ", " █ ", " █ "},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "▪", " ", "▪", " "},
}

// bigClockWidth returns the cell width renderBigTime needs for s.
func bigClockWidth(s string) int {
	w := 0
	for _, ch := range s {
		g, ok := glyphs[ch]
		if !ok {
			continue
		}
		if w > 0 {
			w++
		}
		w += len([]rune(g[0]))
	}
	return w
}

// renderBigTime draws an mm:ss string as five rows of block glyphs.
// Characters without a glyph are skipped.
func renderBigTime(s string, style lipgloss.Style) string {
	var rows [glyphRows]strings.Builder
	first := true
	for _, ch := range s {
		g, ok := glyphs[ch]
		if !ok {
			continue
		}
		for i := range rows {
			if !first {
				rows[i].WriteByte(' ')
			}
			rows[i].WriteString(g[i])
		}
		first = false
	}

	out := make([]string, glyphRows)
	for i := range rows {
		out[i] = style.Render(rows[i].String())
	}
	return strings.Join(out, "\n")
}
