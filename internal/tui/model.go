// Package tui is the terminal host for the catalog browser. It owns the
// widgets and forwards every user event to the controller.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Makepad-fr/reel/internal/catalog"
	"github.com/Makepad-fr/reel/internal/controller"
	"github.com/Makepad-fr/reel/internal/view"
)

type keyMap struct {
	Open, NextFilter, PrevFilter, Quit key.Binding
	Submit, Cancel, SwitchField        key.Binding
	ForceQuit                          key.Binding
}

var keys = keyMap{
	Open:        key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("r", "review")),
	NextFilter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "next genre")),
	PrevFilter:  key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "prev genre")),
	Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	SwitchField: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch field")),
	ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
}

// events is the part of controller.Controller the browser drives.
type events interface {
	Start() []string
	State() controller.State
	Filter() string
	OpenEdit(id int) error
	SubmitEdit(rating, text string) error
	CancelEdit() error
	ChangeFilter(category string)
}

const (
	fieldRating = iota
	fieldComment
)

type Model struct {
	ctrl events
	surf *surface
	log  *zap.Logger

	list      list.Model
	filters   []string
	filterIdx int

	rating  textinput.Model
	comment textinput.Model
	field   int
	editErr string

	submitted int

	width, height int
	// err is set when the controller reports an inconsistency; the program
	// quits and Run returns it.
	err error
}

// New builds the browser over store, renders it and applies the initial
// category filter.
func New(store *catalog.Store, category string, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	surf := &surface{}
	ctrl := controller.New(store, view.NewRenderer(surf), surf, log)

	l := list.New(nil, cardDelegate{}, 80, 20)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.SetStatusBarItemName("film", "films")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{keys.Open, keys.NextFilter} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{keys.Open, keys.NextFilter, keys.PrevFilter} }

	m := Model{
		ctrl:   ctrl,
		surf:   surf,
		log:    log,
		list:   l,
		width:  80,
		height: 24,
	}
	m.rating = textinput.New()
	m.rating.Prompt = "Rating > "
	m.rating.Placeholder = "1-5"
	m.rating.CharLimit = 3
	m.comment = textinput.New()
	m.comment.Prompt = "Review > "
	m.comment.Placeholder = "Optional comment..."
	m.comment.CharLimit = 500

	m.filters = ctrl.Start()
	if category != "" && category != catalog.AllCategories {
		for i, f := range m.filters {
			if f == category {
				m.filterIdx = i
			}
		}
		// unknown categories still filter, to an empty gallery
		ctrl.ChangeFilter(category)
	}
	m.sync()
	return m
}

// Run starts the interactive program and blocks until the user quits. It
// returns the final model.
func Run(m Model) (Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	return finish(m, final, err)
}

func finish(start Model, final tea.Model, err error) (Model, error) {
	if err != nil {
		return start, err
	}
	fm, ok := final.(Model)
	if !ok {
		return start, nil
	}
	return fm, fm.err
}

func (m Model) Init() tea.Cmd { return nil }

// Submitted counts reviews accepted during the session.
func (m Model) Submitted() int { return m.submitted }

// Err is the inconsistency that stopped the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}
	if m.surf.editing {
		return m.updateEditing(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Open):
			return m.openSelected()
		case key.Matches(msg, keys.NextFilter):
			m.shiftFilter(1)
			return m, m.sync()
		case key.Matches(msg, keys.PrevFilter):
			m.shiftFilter(-1)
			return m, m.sync()
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.ForceQuit):
			return m, tea.Quit
		case key.Matches(msg, keys.Cancel):
			if err := m.ctrl.CancelEdit(); err != nil {
				m.log.Error("cancel edit", zap.Error(err))
			}
			m.editErr = ""
			return m, m.sync()
		case key.Matches(msg, keys.Submit):
			err := m.ctrl.SubmitEdit(m.rating.Value(), m.comment.Value())
			switch {
			case errors.Is(err, controller.ErrInvalidInput):
				m.editErr = "Rating must be a whole number"
				return m, nil
			case err != nil:
				m.log.Error("submit edit", zap.Error(err))
				m.err = err
				return m, tea.Quit
			}
			m.editErr = ""
			m.submitted++
			return m, m.sync()
		case key.Matches(msg, keys.SwitchField):
			return m, m.focus(1 - m.field)
		}
	}

	var cmd tea.Cmd
	if m.field == fieldRating {
		m.rating, cmd = m.rating.Update(msg)
	} else {
		m.comment, cmd = m.comment.Update(msg)
	}
	return m, cmd
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	c, ok := m.list.SelectedItem().(cardItem)
	if !ok {
		return m, nil
	}
	if err := m.ctrl.OpenEdit(c.ID); err != nil {
		m.log.Warn("open edit", zap.Int("id", c.ID), zap.Error(err))
		m.surf.notice = err.Error()
		return m, nil
	}
	m.surf.notice = ""
	m.editErr = ""
	cmd := m.focus(fieldRating)
	m.resize()
	return m, cmd
}

func (m *Model) shiftFilter(step int) {
	if len(m.filters) == 0 {
		return
	}
	m.filterIdx = (m.filterIdx + step + len(m.filters)) % len(m.filters)
	m.ctrl.ChangeFilter(m.filters[m.filterIdx])
}

func (m *Model) focus(field int) tea.Cmd {
	m.field = field
	if field == fieldRating {
		m.comment.Blur()
		return m.rating.Focus()
	}
	m.rating.Blur()
	return m.comment.Focus()
}

// sync copies what the controller pushed to the surface into the widgets.
func (m *Model) sync() tea.Cmd {
	var cmd tea.Cmd
	if m.surf.cardsDirty {
		items := make([]list.Item, 0, len(m.surf.cards))
		for _, c := range m.surf.cards {
			items = append(items, cardItem{c})
		}
		cmd = m.list.SetItems(items)
		if m.list.Index() >= len(items) {
			m.list.ResetSelected()
		}
		m.surf.cardsDirty = false
	}
	if m.surf.resetInput {
		m.rating.Reset()
		m.comment.Reset()
		m.rating.Blur()
		m.comment.Blur()
		m.field = fieldRating
		m.surf.resetInput = false
	}
	if m.ctrl.Filter() == catalog.AllCategories {
		m.filterIdx = 0
	}
	m.list.Title = fmt.Sprintf("%s   %s %s",
		titleStyle.Render("Reel"),
		accentStyle.Render("Genre:"), m.ctrl.Filter(),
	)
	m.resize()
	return cmd
}

func (m *Model) resize() {
	h := m.height - 4
	if m.surf.editing {
		h -= 7
	}
	if m.surf.notice != "" {
		h--
	}
	m.list.SetSize(max(m.width-4, 10), max(h, 3))
}

func (m Model) View() string {
	content := m.list.View()
	if m.surf.editing {
		title := "Review: " + titleStyle.Render(m.surf.editTitle)
		if m.editErr != "" {
			title += "  " + errorStyle.Render(m.editErr)
		}
		lines := []string{
			title,
			m.rating.View(),
			m.comment.View(),
			helpStyle.Render("tab switch field  ·  enter submit  ·  esc cancel"),
		}
		content += "\n" + dialogString(strings.Join(lines, "\n"))
	}
	if m.surf.notice != "" {
		content += "\n" + successStyle.Render("✔ "+m.surf.notice)
	}
	return panelString(content)
}
