package controller

import "fmt"

type Mode int

const (
	Idle Mode = iota
	Editing
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Editing:
		return "editing"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// State is the controller's position in the edit state machine. ItemID is
// only meaningful while Editing.
type State struct {
	Mode   Mode
	ItemID int
}

func stateOf(sel Selection) State {
	if id, ok := sel.Current(); ok {
		return State{Mode: Editing, ItemID: id}
	}
	return State{Mode: Idle}
}

func (s State) String() string {
	if s.Mode == Editing {
		return fmt.Sprintf("editing(%d)", s.ItemID)
	}
	return s.Mode.String()
}
