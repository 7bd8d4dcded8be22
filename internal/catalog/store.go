// Package catalog holds the in-memory item collection and the score
// aggregation used to display it.
//
// The store is owned by a single control loop and is not safe for
// concurrent use. Callers only ever see copies of item state.
package catalog

import (
	"fmt"
	"strings"

	"github.com/Makepad-fr/reel/internal/model"
)

// AllCategories is the filter value that selects every item.
const AllCategories = "all"

type Store struct {
	items []model.Item
	index map[int]int // id -> position in items
}

// New builds a store from the startup seed, preserving its order.
func New(seed []model.Item) (*Store, error) {
	s := &Store{
		items: make([]model.Item, 0, len(seed)),
		index: make(map[int]int, len(seed)),
	}
	for _, it := range seed {
		if _, dup := s.index[it.ID]; dup {
			return nil, fmt.Errorf("seed: %w: %d", ErrDuplicateID, it.ID)
		}
		s.index[it.ID] = len(s.items)
		s.items = append(s.items, it.Clone())
	}
	return s, nil
}

func (s *Store) Len() int { return len(s.items) }

// All returns every item in insertion order.
func (s *Store) All() []model.Item {
	out := make([]model.Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, it.Clone())
	}
	return out
}

// ByCategory returns the items tagged with category, in insertion order.
// AllCategories returns the full collection.
func (s *Store) ByCategory(category string) []model.Item {
	if category == AllCategories {
		return s.All()
	}
	out := []model.Item{}
	for _, it := range s.items {
		if it.Category == category {
			out = append(out, it.Clone())
		}
	}
	return out
}

func (s *Store) FindByID(id int) (model.Item, error) {
	i, ok := s.index[id]
	if !ok {
		return model.Item{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return s.items[i].Clone(), nil
}

// AppendScore records a score. The range is not checked here.
func (s *Store) AppendScore(id, score int) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	s.items[i].Scores = append(s.items[i].Scores, score)
	return nil
}

// AppendComment records text trimmed of surrounding whitespace. Blank text
// is ignored.
func (s *Store) AppendComment(id int, text string) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	s.items[i].Comments = append(s.items[i].Comments, text)
	return nil
}

// DistinctCategories lists each category once, in order of first occurrence.
func (s *Store) DistinctCategories() []string {
	seen := make(map[string]bool, len(s.items))
	var out []string
	for _, it := range s.items {
		if seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		out = append(out, it.Category)
	}
	return out
}
