package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Faint, Accent, Success, Error, Star string
	StarFull, StarEmpty                               string
	CornerTL, CornerTR, CornerBL, CornerBR            string
	H, V                                              string
}

// ThemeNames lists the names SetTheme understands.
var ThemeNames = []string{"classic", "neon", "mono"}

var current Theme

func init() { SetTheme("classic") }

func ValidTheme(name string) bool {
	for _, n := range ThemeNames {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// SetTheme switches the palette. Unknown names fall back to classic.
// The mono theme carries no colors at all.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Faint: dim, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Star: "\033[93m",
			StarFull: "◆", StarEmpty: "◇",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
		}
	case "mono":
		current = Theme{
			StarFull: "*", StarEmpty: ".",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
		}
	default: // classic
		current = Theme{
			Title: bold, Muted: fgGray, Faint: dim, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Star: fgYellow,
			StarFull: "★", StarEmpty: "☆",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }
