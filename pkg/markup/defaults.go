package markup

import (
	"fmt"

	"github.com/go-arbor/arbor/pkg/core"
	"github.com/go-arbor/arbor/pkg/elements"
)

// DefaultLoader returns a Loader with every kind from package elements
// registered. Kind names are snake_case type names.
//
// Construction-critical props are mapped onto struct fields ("title" for
// tab and menu, "text" for label, button and menu_item, "size" for
// spacer); every prop is also stored verbatim in the node's property bag.
func DefaultLoader() *Loader {
	l := NewLoader()
	mustRegister(l,"group", func(map[string]any) (core.Node, error) {
		return elements.NewGroup(), nil
	})
	mustRegister(l,"frame", func(props map[string]any) (core.Node, error) {
		f := elements.NewFrame()
		f.Title, _ = stringProp(props, "title")
		return f, nil
	})
	mustRegister(l,"border_layout", func(map[string]any) (core.Node, error) {
		return elements.NewBorderLayout(), nil
	})
	mustRegister(l,"tab_pane", func(map[string]any) (core.Node, error) {
		return elements.NewTabPane(), nil
	})
	mustRegister(l,"tab", func(props map[string]any) (core.Node, error) {
		title, ok := stringProp(props, "title")
		if !ok {
			return nil, fmt.Errorf("tab requires a title prop")
		}
		return elements.NewTab(title)
	})
	mustRegister(l,"menu_bar", func(map[string]any) (core.Node, error) {
		return elements.NewMenuBar(), nil
	})
	mustRegister(l,"menu", func(props map[string]any) (core.Node, error) {
		title, _ := stringProp(props, "title")
		return elements.NewMenu(title), nil
	})
	mustRegister(l,"menu_item", func(props map[string]any) (core.Node, error) {
		text, _ := stringProp(props, "text")
		return elements.NewMenuItem(text), nil
	})
	mustRegister(l,"label", func(props map[string]any) (core.Node, error) {
		lb := elements.NewLabel()
		lb.Text, _ = stringProp(props, "text")
		return lb, nil
	})
	mustRegister(l,"button", func(props map[string]any) (core.Node, error) {
		b := elements.NewButton()
		b.Text, _ = stringProp(props, "text")
		return b, nil
	})
	mustRegister(l,"input", func(props map[string]any) (core.Node, error) {
		in := elements.NewInput()
		in.Value, _ = stringProp(props, "value")
		in.Placeholder, _ = stringProp(props, "placeholder")
		return in, nil
	})
	mustRegister(l,"spacer", func(props map[string]any) (core.Node, error) {
		size, _ := floatProp(props, "size")
		return elements.NewSpacer(size)
	})
	return l
}

// mustRegister panics on a duplicate kind. The built-in registrations
// are static, so a collision is a programming error.
func mustRegister(l *Loader, kind string, f Factory) {
	if err := l.Register(kind, f); err != nil {
		panic(err)
	}
}

func stringProp(props map[string]any, key string) (string, bool) {
	v, ok := props[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func floatProp(props map[string]any, key string) (float64, bool) {
	switch v := props[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
