package markup

import (
	"strings"
	"testing"

	"github.com/go-arbor/arbor/pkg/core"
	"github.com/go-arbor/arbor/pkg/elements"
	"github.com/go-arbor/arbor/pkg/errors"
	"github.com/go-arbor/arbor/pkg/nodetest"
)

const demoDoc = `
kind: border_layout
id: shell
children:
  - kind: menu_bar
    slot: top
    children:
      - kind: menu
        props: {title: File}
        children:
          - {kind: menu_item, props: {text: Open}}
          - {kind: menu_item, props: {text: Quit}}
  - kind: group
    slot: center
    children:
      - {kind: label, id: status, props: {text: Ready}}
      - {kind: spacer, props: {size: 8}}
      - {kind: button, id: ok, props: {text: OK, tooltip: confirm}}
`

func TestBuild_Document(t *testing.T) {
	root, err := DefaultLoader().Build(nil, strings.NewReader(demoDoc))
	if err != nil {
		t.Fatal(err)
	}

	shell, ok := root.(*elements.BorderLayout)
	if !ok {
		t.Fatalf("root = %T, want *elements.BorderLayout", root)
	}
	if shell.ID() != "shell" {
		t.Errorf("root id = %q, want shell", shell.ID())
	}

	bar, ok := shell.Top().(*elements.MenuBar)
	if !ok {
		t.Fatalf("top = %T, want *elements.MenuBar", shell.Top())
	}
	file := bar.Children()[0].(*elements.Menu)
	if file.Title != "File" {
		t.Errorf("menu title = %q, want File", file.Title)
	}
	items := file.Children()
	if len(items) != 2 {
		t.Fatalf("menu has %d items, want 2", len(items))
	}
	if items[0].(*elements.MenuItem).Text != "Open" || items[1].(*elements.MenuItem).Text != "Quit" {
		t.Error("menu items should keep document order")
	}

	center := shell.Center().(*elements.Group)
	kids := center.Children()
	if len(kids) != 3 {
		t.Fatalf("center has %d children, want 3", len(kids))
	}
	if kids[0].(*elements.Label).Text != "Ready" {
		t.Error("label text should come from props")
	}
	if kids[1].(*elements.Spacer).Size != 8 {
		t.Error("spacer size should come from props")
	}

	ok2 := nodetest.Find(root, nodetest.ByID("ok"))
	if !ok2.Exists() {
		t.Fatal("button should be findable by id")
	}
	if v, _ := ok2.First().Props().Get("tooltip"); v != "confirm" {
		t.Error("props should be mirrored into the property bag")
	}
}

func TestBuild_TabUsesTitleAsSlot(t *testing.T) {
	doc := `
kind: tab_pane
children:
  - kind: tab
    props: {title: General}
    children:
      - {kind: label, props: {text: settings}}
  - kind: tab
    props: {title: Advanced}
`
	root, err := DefaultLoader().Build(nil, strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	pane := root.(*elements.TabPane)
	if pane.TabTitled("General") == nil || pane.TabTitled("Advanced") == nil {
		t.Error("tabs should register under their titles without an explicit slot")
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		pred func(error) bool
		want string
	}{
		{
			name: "unknown kind",
			doc:  `{kind: carousel}`,
			pred: errors.IsMarkup,
			want: "markup",
		},
		{
			name: "missing kind",
			doc:  `{id: x}`,
			pred: errors.IsMarkup,
			want: "markup",
		},
		{
			name: "not yaml",
			doc:  `{{{{`,
			pred: errors.IsMarkup,
			want: "markup",
		},
		{
			name: "leaf with children",
			doc:  "kind: label\nchildren:\n  - {kind: label}\n",
			pred: errors.IsMarkup,
			want: "markup",
		},
		{
			name: "constructor failure",
			doc:  `{kind: tab}`,
			pred: errors.IsInvalidArgument,
			want: "invalid_argument",
		},
		{
			name: "bad attachment",
			doc:  "kind: border_layout\nchildren:\n  - {kind: label, slot: sideways}\n",
			pred: errors.IsInvalidAttachment,
			want: "invalid_attachment",
		},
		{
			name: "non-tab in tab pane",
			doc:  "kind: tab_pane\nchildren:\n  - {kind: label, slot: General}\n",
			pred: errors.IsInvalidAttachment,
			want: "invalid_attachment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DefaultLoader().Build(nil, strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.pred(err) {
				t.Errorf("err = %v, want kind %s", err, tt.want)
			}
		})
	}
}

func TestBuild_UnderExistingParent(t *testing.T) {
	parent := elements.NewGroup()
	node, err := DefaultLoader().Build(parent, strings.NewReader(`{kind: label, props: {text: hi}}`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Parent() != core.Container(parent) {
		t.Error("markup root should attach to the provided parent")
	}
}

func TestRegister_DuplicateKind(t *testing.T) {
	l := NewLoader()
	if err := l.Register("label", func(map[string]any) (core.Node, error) {
		return elements.NewLabel(), nil
	}); err != nil {
		t.Fatal(err)
	}
	err := l.Register("label", func(map[string]any) (core.Node, error) {
		return elements.NewLabel(), nil
	})
	if !errors.IsAlreadyAssigned(err) {
		t.Fatalf("err = %v, want already_assigned", err)
	}
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	l := DefaultLoader()
	defer func() {
		if recover() == nil {
			t.Fatal("registering a built-in kind twice should panic")
		}
	}()
	mustRegister(l, "group", func(map[string]any) (core.Node, error) {
		return elements.NewGroup(), nil
	})
}
