// Package style provides typed accessors over node property bags and
// color parsing for visual settings. It deliberately stops short of any
// styling semantics: values are stored and retrieved, never cascaded or
// rendered.
package style

import (
	"image/color"

	"github.com/go-arbor/arbor/pkg/core"
)

// Prop is a typed key into a node's property bag.
type Prop[T any] struct {
	Key string
}

// Set stores v on the node under the prop's key.
func (p Prop[T]) Set(n core.Node, v T) {
	n.Props().Set(p.Key, v)
}

// Get returns the value stored on the node, reporting false when the
// key is absent or holds a value of a different type.
func (p Prop[T]) Get(n core.Node) (T, bool) {
	raw, ok := n.Props().Get(p.Key)
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := raw.(T)
	return v, ok
}

// GetOr returns the stored value or fallback when absent.
func (p Prop[T]) GetOr(n core.Node, fallback T) T {
	if v, ok := p.Get(n); ok {
		return v
	}
	return fallback
}

// Common visual properties.
var (
	Background = Prop[color.RGBA]{Key: "background"}
	Foreground = Prop[color.RGBA]{Key: "foreground"}
	FontSize   = Prop[float64]{Key: "font_size"}
	Padding    = Prop[float64]{Key: "padding"}
	Visible    = Prop[bool]{Key: "visible"}
	Tooltip    = Prop[string]{Key: "tooltip"}
)
