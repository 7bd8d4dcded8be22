// Package controller turns user events into catalog mutations and gallery
// refreshes. It has no knowledge of the terminal; the host supplies a
// view.Gallery and an EditSurface.
package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Makepad-fr/reel/internal/catalog"
	"github.com/Makepad-fr/reel/internal/view"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotEditing     = errors.New("no edit in progress")
	ErrAlreadyEditing = errors.New("an edit is already in progress")
	// ErrStaleSelection means the selected id no longer resolves to an item.
	ErrStaleSelection = errors.New("selection does not match any item")
)

// EditSurface is the host's modal review dialog.
type EditSurface interface {
	ShowEdit(title string)
	HideEdit()
	ResetFields()
	Notify(msg string)
}

type Controller struct {
	store    *catalog.Store
	renderer *view.Renderer
	surface  EditSurface
	log      *zap.Logger

	sel    Selection
	filter string
}

// New wires a controller. A nil logger discards log output.
func New(store *catalog.Store, renderer *view.Renderer, surface EditSurface, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		store:    store,
		renderer: renderer,
		surface:  surface,
		log:      log,
		filter:   catalog.AllCategories,
	}
}

// Start renders the full catalog and returns the filter options, "all"
// first.
func (c *Controller) Start() []string {
	c.renderer.Render(c.store.All())
	opts := append([]string{catalog.AllCategories}, c.store.DistinctCategories()...)
	c.log.Debug("catalog rendered", zap.Int("items", c.store.Len()), zap.Strings("filters", opts))
	return opts
}

func (c *Controller) State() State { return stateOf(c.sel) }

func (c *Controller) Selection() Selection { return c.sel }

// Filter is the category currently shown.
func (c *Controller) Filter() string { return c.filter }

// OpenEdit starts reviewing item id. Unknown ids leave the state untouched.
func (c *Controller) OpenEdit(id int) error {
	if cur, ok := c.sel.Current(); ok {
		return fmt.Errorf("%w: item %d", ErrAlreadyEditing, cur)
	}
	it, err := c.store.FindByID(id)
	if err != nil {
		return err
	}
	c.sel = Select(id)
	c.surface.ShowEdit(it.Title)
	c.log.Debug("edit opened", zap.Int("id", id))
	return nil
}

// SubmitEdit records rating and an optional comment for the selected item.
// A rating that is not a whole number is rejected with ErrInvalidInput and
// the edit stays open.
func (c *Controller) SubmitEdit(rating, text string) error {
	id, ok := c.sel.Current()
	if !ok {
		return ErrNotEditing
	}
	score, err := strconv.Atoi(strings.TrimSpace(rating))
	if err != nil {
		c.log.Warn("rating rejected", zap.Int("id", id), zap.String("rating", rating))
		return fmt.Errorf("%w: rating %q is not a whole number", ErrInvalidInput, rating)
	}
	it, err := c.store.FindByID(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStaleSelection, err)
	}
	if err := c.store.AppendScore(id, score); err != nil {
		return fmt.Errorf("%w: %w", ErrStaleSelection, err)
	}
	if err := c.store.AppendComment(id, text); err != nil {
		return fmt.Errorf("%w: %w", ErrStaleSelection, err)
	}

	c.filter = catalog.AllCategories
	c.renderer.Render(c.store.All())
	c.sel = c.sel.Clear()
	c.surface.HideEdit()
	c.surface.ResetFields()
	c.surface.Notify("Thank you! Review submitted for: " + it.Title)
	c.log.Debug("review submitted", zap.Int("id", id), zap.Int("score", score))
	return nil
}

// CancelEdit abandons the edit without touching the catalog.
func (c *Controller) CancelEdit() error {
	id, ok := c.sel.Current()
	if !ok {
		return ErrNotEditing
	}
	c.sel = c.sel.Clear()
	c.surface.HideEdit()
	c.surface.ResetFields()
	c.log.Debug("edit cancelled", zap.Int("id", id))
	return nil
}

// ChangeFilter shows only items in category, or everything for "all".
func (c *Controller) ChangeFilter(category string) {
	items := c.store.ByCategory(category)
	c.filter = category
	c.renderer.Render(items)
	c.log.Debug("filter changed", zap.String("category", category), zap.Int("items", len(items)))
}
