package elements

import "github.com/go-arbor/arbor/pkg/core"

// Group is a plain ordered container. Children render in attachment
// order.
type Group struct {
	core.OrderedBase
}

var _ core.Container = (*Group)(nil)

// NewGroup creates an empty Group.
func NewGroup() *Group {
	g := &Group{}
	g.SetSelf(g)
	return g
}
