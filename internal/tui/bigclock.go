package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const glyphHeight = 5

var glyphs = map[rune][glyphHeight]string{
	'0': {"█████", "█   █", "█   █", "█   █", "█████"},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", " ███ "},
	'2': {"█████", "    █", "█████", "█    ", "█████"},
	'3': {"█████", "    █", " ████", "    █", "█████"},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "█████", "    █", "█████"},
	'6': {"█████", "█    ", "█████", "█   █", "█████"},
	'7': {"█████", "    █", "   █ ", "  █  ", "  █  "},
	'8': {"█████", "█   █", "█████", "█   █", "█████"},
	'9': {"█████", "█   █", "█████", "    █", "█████"},
	':': {"   ", " █ ", "   ", " █ ", "   "},
}

// renderBigClock draws text in block glyphs, one string per row, truncated
// to width when width > 0. Characters without a glyph are skipped.
func renderBigClock(text string, width int) []string {
	rows := make([]string, glyphHeight)
	for _, r := range text {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			if rows[i] != "" {
				rows[i] += " "
			}
			rows[i] += g[i]
		}
	}
	if width > 0 {
		for i := range rows {
			if ansi.StringWidth(rows[i]) > width {
				rows[i] = ansi.Truncate(rows[i], width, "")
			}
		}
	}
	return rows
}

func bigClock(text string, width int) string {
	return strings.Join(renderBigClock(text, width), "\n")
}
