package builders

import (
	"testing"

	"github.com/go-arbor/arbor/pkg/core"
	"github.com/go-arbor/arbor/pkg/elements"
	"github.com/go-arbor/arbor/pkg/errors"
	"github.com/go-arbor/arbor/pkg/ref"
)

func TestBuildersComposeDeclaratively(t *testing.T) {
	saveItem := ref.New[*elements.MenuItem]()
	okButton := ref.New[*elements.Button]()

	root, err := BorderLayout(nil, func(l *elements.BorderLayout) error {
		if _, err := MenuBarAt(l, elements.RegionTop, func(bar *elements.MenuBar) error {
			_, err := Menu(bar, "File", func(m *elements.Menu) error {
				item, err := MenuItem(m, "Save")
				if err != nil {
					return err
				}
				return saveItem.Set(item)
			})
			return err
		}); err != nil {
			return err
		}

		_, err := GroupAt(l, elements.RegionCenter, func(g *elements.Group) error {
			if _, err := Label(g, func(lb *elements.Label) error {
				lb.Text = "Ready"
				return nil
			}); err != nil {
				return err
			}
			if _, err := Spacer(g, 8); err != nil {
				return err
			}
			b, err := Button(g, func(b *elements.Button) error {
				b.Text = "OK"
				return nil
			})
			if err != nil {
				return err
			}
			return okButton.Set(b)
		})
		return err
	})
	if err != nil {
		t.Fatal(err)
	}

	bar, ok := root.Top().(*elements.MenuBar)
	if !ok {
		t.Fatalf("top region holds %T, want *elements.MenuBar", root.Top())
	}
	if len(bar.Children()) != 1 {
		t.Fatalf("bar has %d menus, want 1", len(bar.Children()))
	}

	center, ok := root.Center().(*elements.Group)
	if !ok {
		t.Fatalf("center region holds %T, want *elements.Group", root.Center())
	}
	kids := center.Children()
	if len(kids) != 3 {
		t.Fatalf("center has %d children, want 3", len(kids))
	}
	if _, ok := kids[0].(*elements.Label); !ok {
		t.Errorf("child 0 = %T, want *elements.Label", kids[0])
	}
	if _, ok := kids[1].(*elements.Spacer); !ok {
		t.Errorf("child 1 = %T, want *elements.Spacer", kids[1])
	}
	if kids[2] != core.Node(okButton.MustGet()) {
		t.Error("child 2 should be the captured button")
	}

	if !saveItem.IsSet() {
		t.Error("menu item ref should be captured during configuration")
	}
}

func TestBuilders_SiblingOrderMatchesCallOrder(t *testing.T) {
	g, err := Group(nil, func(g *elements.Group) error {
		for _, text := range []string{"A", "B", "C"} {
			if _, err := Label(g, func(l *elements.Label) error {
				l.Text = text
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	kids := g.Children()
	if len(kids) != 3 {
		t.Fatalf("got %d children, want 3", len(kids))
	}
	for i, want := range []string{"A", "B", "C"} {
		if got := kids[i].(*elements.Label).Text; got != want {
			t.Errorf("child %d text = %q, want %q", i, got, want)
		}
	}
}

func TestBuilders_FrameLastWriteWins(t *testing.T) {
	frame, err := Frame(nil)
	if err != nil {
		t.Fatal(err)
	}

	first, err := Label(frame)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Label(frame)
	if err != nil {
		t.Fatal(err)
	}

	if frame.Content() != core.Node(second) {
		t.Error("frame should hold the second label")
	}
	if first.Parent() != nil {
		t.Error("first label should be detached from the tree")
	}
}

func TestBuilders_ConstructErrorSurfaces(t *testing.T) {
	g := elements.NewGroup()
	_, err := Spacer(g, -4)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("err = %v, want invalid_argument", err)
	}
	if len(g.Children()) != 0 {
		t.Error("failed construction must not attach")
	}
}

func TestBuilders_TabRegistration(t *testing.T) {
	pane, err := TabPane(nil, func(p *elements.TabPane) error {
		if _, err := Tab(p, "General", func(tab *elements.Tab) error {
			_, err := Label(tab, func(l *elements.Label) error {
				l.Text = "settings"
				return nil
			})
			return err
		}); err != nil {
			return err
		}
		_, err := Tab(p, "Advanced")
		return err
	})
	if err != nil {
		t.Fatal(err)
	}

	general := pane.TabTitled("General")
	if general == nil {
		t.Fatal("General tab should be registered under its title")
	}
	if _, ok := general.Content().(*elements.Label); !ok {
		t.Errorf("tab content = %T, want *elements.Label", general.Content())
	}
	if pane.TabTitled("Advanced") == nil {
		t.Error("Advanced tab should be registered under its title")
	}
}
