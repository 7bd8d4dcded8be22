package ui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

func visibleWidth(s string) int { return runewidth.StringWidth(stripANSI(s)) }

// StarBar renders avg as a row of outOf stars, rounded to whole stars.
func StarBar(avg decimal.Decimal, outOf int) string {
	if outOf < 1 {
		outOf = 5
	}
	filled := int(avg.Round(0).IntPart())
	filled = max(0, min(filled, outOf))
	t := Current()
	return strings.Repeat(t.StarFull, filled) + strings.Repeat(t.StarEmpty, outOf-filled)
}

// Panel draws a framed box on Stdout using the current theme.
func Panel(lines []string) { FPanel(Stdout, lines) }

func FPanel(w io.Writer, lines []string) {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		maxw = max(maxw, visibleWidth(ln))
	}
	pad := func(s string) string {
		if vis := visibleWidth(s); vis < maxw {
			s = s + strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	leftPad := " "
	fmt.Fprintln(w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(w, t.V+leftPad+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}
