package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/reel/internal/view"
)

// cardItem adapts view.Card to bubbles/list.Item
type cardItem struct{ view.Card }

func (c cardItem) FilterValue() string { return c.Title }

// Custom delegate: three lines per card
type cardDelegate struct{}

func (d cardDelegate) Height() int                               { return 3 }
func (d cardDelegate) Spacing() int                              { return 1 }
func (d cardDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	c, ok := item.(cardItem)
	if !ok {
		return
	}
	prefix := "  "
	title := titleStyle.Render(fmt.Sprintf("%s (%d)", c.Title, c.Year))
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	meta := mutedStyle.Render(fmt.Sprintf("Genre: %s  ·  %s", c.Category, c.ImageRef))
	fmt.Fprintf(w, "%s%s\n  %s\n  %s", prefix, title, meta, ratingStyle.Render(c.Rating))
}
