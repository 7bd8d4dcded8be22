package tui

import "github.com/Makepad-fr/reel/internal/view"

// surface is what the controller writes to. The Bubble Tea model copies it
// into widgets after every event.
type surface struct {
	cards      []view.Card
	cardsDirty bool

	editing    bool
	editTitle  string
	resetInput bool

	notice string
}

func (s *surface) ReplaceCards(cards []view.Card) {
	s.cards = cards
	s.cardsDirty = true
}

func (s *surface) ShowEdit(title string) {
	s.editing = true
	s.editTitle = title
}

func (s *surface) HideEdit() {
	s.editing = false
	s.editTitle = ""
}

func (s *surface) ResetFields() { s.resetInput = true }

func (s *surface) Notify(msg string) { s.notice = msg }
