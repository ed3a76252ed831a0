package tui

import (
	"strings"

	rw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// Preview collapses s to a single line and truncates it to width terminal
// cells, appending an ellipsis when content was cut. Truncation is
// grapheme-aware so wide runes and combining clusters are never split.
func Preview(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	if width <= 0 {
		return ""
	}
	if rw.StringWidth(s) <= width {
		return s
	}

	budget := width - rw.StringWidth(ellipsis)
	var b strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		w := rw.StringWidth(cluster)
		if used+w > budget {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return strings.TrimRight(b.String(), " ") + ellipsis
}
