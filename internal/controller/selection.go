package controller

// Selection records which item, if any, an in-progress edit targets.
// The zero value selects nothing.
type Selection struct {
	id  int
	set bool
}

func Select(id int) Selection { return Selection{id: id, set: true} }

// Clear returns the empty selection.
func (Selection) Clear() Selection { return Selection{} }

// Current reports the selected id; ok is false when nothing is selected.
func (s Selection) Current() (id int, ok bool) { return s.id, s.set }
