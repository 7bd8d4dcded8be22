package cli

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/Makepad-fr/reel/internal/catalog"
	"github.com/Makepad-fr/reel/internal/model"
	"github.com/Makepad-fr/reel/internal/ui"
	"github.com/Makepad-fr/reel/internal/view"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "Print the catalog (honours --category)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore()
			if err != nil {
				return err
			}
			items := store.ByCategory(a.cfg.Category)
			ui.Panel(listLines(items, a.cfg.Category, store.Len()))
			return nil
		},
	}
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the genre filter options",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, catalog.AllCategories)
			for _, c := range store.DistinctCategories() {
				fmt.Fprintln(w, c)
			}
			return nil
		},
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

// -------------- rendering helpers --------------

func listLines(items []model.Item, category string, total int) []string {
	t := ui.Current()
	header := fmt.Sprintf("%s  %s %s  %s %d/%d",
		ui.C(t.Title, "Reel"),
		ui.C(t.Accent, "Genre"), category,
		ui.C(t.Accent, "Showing"), len(items), total,
	)
	lines := []string{header, ""}

	if len(items) == 0 {
		lines = append(lines, ui.C(t.Muted, "no films"))
	}
	cards := view.BuildCards(items)
	for i, c := range cards {
		title := runewidth.Truncate(c.Title, 60, "...")
		lines = append(lines,
			fmt.Sprintf("%s %s (%d)  %s", ui.Dim(fmt.Sprintf("%d.", c.ID)), title, c.Year, ui.C(t.Muted, c.Category)),
			fmt.Sprintf("     %s %s", ui.C(t.Star, ui.StarBar(catalog.Average(items[i].Scores), 5)), c.Rating),
		)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Muted, "Tip: run `reel` to rate films interactively"))
	return lines
}
