package widget

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Continuation fills the trailing columns of a wide character
const Continuation rune = -1

// eachGrapheme walks s by visual character, reporting the leading rune and display width
// Zero-width clusters are given one column so every character stays addressable
func eachGrapheme(s string, fn func(first rune, width int) bool) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		if len(runes) == 0 {
			continue
		}
		w := runewidth.StringWidth(g.Str())
		if w < 1 {
			w = 1
		}
		if !fn(runes[0], w) {
			return
		}
	}
}

// TextWidth returns the display columns text occupies
func TextWidth(text string) int {
	total := 0
	eachGrapheme(text, func(_ rune, w int) bool {
		total += w
		return true
	})
	return total
}

// Fit returns the longest prefix of text that fits in width columns
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := max(runewidth.StringWidth(g.Str()), 1)
		if used+w > width {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	return b.String()
}

// DropLast removes the last visual character of text
func DropLast(text string) string {
	last := -1
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		last, _ = g.Positions()
	}
	if last < 0 {
		return text
	}
	return text[:last]
}

// TailWidth returns the longest suffix of text that fits in width columns
func TailWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	type cluster struct{ from, w int }
	var cs []cluster
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		from, _ := g.Positions()
		cs = append(cs, cluster{from, max(runewidth.StringWidth(g.Str()), 1)})
	}

	start, used := len(text), 0
	for i := len(cs) - 1; i >= 0; i-- {
		if used+cs[i].w > width {
			break
		}
		used += cs[i].w
		start = cs[i].from
	}
	return text[start:]
}
