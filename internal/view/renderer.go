// Package view projects catalog items into display cards.
package view

import (
	"fmt"

	"github.com/Makepad-fr/reel/internal/catalog"
	"github.com/Makepad-fr/reel/internal/model"
)

// Card is one display unit. The host activates it by handing ID to the
// controller's OpenEdit.
type Card struct {
	ID       int
	ImageRef string
	Title    string
	Year     int
	Category string
	Rating   string
}

// Gallery is the container the host provides for cards. Each call replaces
// whatever was shown before.
type Gallery interface {
	ReplaceCards(cards []Card)
}

type Renderer struct {
	gallery Gallery
}

func NewRenderer(g Gallery) *Renderer {
	return &Renderer{gallery: g}
}

// Render rebuilds the gallery from items, one card per item in input order.
func (r *Renderer) Render(items []model.Item) {
	r.gallery.ReplaceCards(BuildCards(items))
}

func BuildCards(items []model.Item) []Card {
	cards := make([]Card, 0, len(items))
	for _, it := range items {
		cards = append(cards, Card{
			ID:       it.ID,
			ImageRef: it.ImageRef,
			Title:    it.Title,
			Year:     it.Year,
			Category: it.Category,
			Rating:   RatingLine(it.Scores),
		})
	}
	return cards
}

// RatingLine is the aggregate text shown on every card.
func RatingLine(scores []int) string {
	return fmt.Sprintf("⭐ Avg Rating: %s / 5 (%d votes)", catalog.FormatAverage(scores), len(scores))
}
