package elements

import (
	"fmt"

	"github.com/go-arbor/arbor/pkg/core"
)

// MenuBar is an ordered container accepting only menus.
type MenuBar struct {
	core.OrderedBase
}

var _ core.Container = (*MenuBar)(nil)

// NewMenuBar creates an empty MenuBar.
func NewMenuBar() *MenuBar {
	m := &MenuBar{}
	m.SetSelf(m)
	return m
}

// Accepts restricts children to menus.
func (m *MenuBar) Accepts(child core.Node) error {
	if _, ok := child.(*Menu); !ok {
		return fmt.Errorf("menu bar accepts only *elements.Menu, got %T", child)
	}
	return nil
}

// Menu is a titled, ordered container of items and submenus.
type Menu struct {
	core.OrderedBase
	Title string
}

var _ core.Container = (*Menu)(nil)

// NewMenu creates a menu with the given title.
func NewMenu(title string) *Menu {
	m := &Menu{Title: title}
	m.SetSelf(m)
	return m
}

// Accepts restricts children to items and submenus.
func (m *Menu) Accepts(child core.Node) error {
	switch child.(type) {
	case *Menu, *MenuItem:
		return nil
	default:
		return fmt.Errorf("menu accepts only *elements.Menu or *elements.MenuItem, got %T", child)
	}
}

// MenuItem is a leaf menu entry with an action registration slot.
type MenuItem struct {
	core.NodeBase
	Text string

	onAction func()
}

// NewMenuItem creates a menu item with the given text.
func NewMenuItem(text string) *MenuItem {
	m := &MenuItem{Text: text}
	m.SetSelf(m)
	m.OnDispose(func() { m.onAction = nil })
	return m
}

// OnAction registers the item's action handler, replacing any previous
// one.
func (m *MenuItem) OnAction(fn func()) { m.onAction = fn }

// Activate invokes the registered action handler, if any.
func (m *MenuItem) Activate() {
	if m.onAction != nil {
		m.onAction()
	}
}
