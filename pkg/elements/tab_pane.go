package elements

import (
	"fmt"

	"github.com/go-arbor/arbor/pkg/core"
)

// TabPane registers tabs under their titles. Only *Tab children are
// accepted; assigning a second tab under the same title replaces the
// first.
type TabPane struct {
	core.RegionBase
}

var _ core.Container = (*TabPane)(nil)

// NewTabPane creates an empty TabPane.
func NewTabPane() *TabPane {
	p := &TabPane{}
	p.SetSelf(p)
	return p
}

// Accepts restricts children to tabs.
func (p *TabPane) Accepts(child core.Node) error {
	if _, ok := child.(*Tab); !ok {
		return fmt.Errorf("tab pane accepts only *elements.Tab, got %T", child)
	}
	return nil
}

// AddTab registers tab under its title.
func (p *TabPane) AddTab(tab *Tab) error {
	return p.Attach(tab, tab.Title)
}

// TabTitled returns the tab registered under title, or nil.
func (p *TabPane) TabTitled(title string) *Tab {
	tab, _ := p.Region(title).(*Tab)
	return tab
}

// Tab is a titled single-slot page inside a TabPane.
type Tab struct {
	core.SlotBase
	Title string
}

var _ core.Container = (*Tab)(nil)

// NewTab creates a tab with the given title. An empty title fails with
// invalid_argument: the title is the tab's registration slot in its pane.
func NewTab(title string) (*Tab, error) {
	if title == "" {
		return nil, fmt.Errorf("tab title must not be empty")
	}
	t := &Tab{Title: title}
	t.SetSelf(t)
	return t, nil
}

// Content returns the tab's page content, or nil.
func (t *Tab) Content() core.Node { return t.Occupant() }

// DefaultSlot returns the tab's title, which is its registration slot in
// a pane.
func (t *Tab) DefaultSlot() any { return t.Title }
