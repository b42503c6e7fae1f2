package core

import (
	"fmt"

	"github.com/go-arbor/arbor/pkg/errors"
)

// OrderedBase is a container base whose children form an ordered sequence.
// Insertion order is render order: Attach with a nil slot appends, an int
// slot inserts at that position.
type OrderedBase struct {
	NodeBase
	children []Node
}

// Attach appends child, or inserts it when slot is an int.
func (b *OrderedBase) Attach(child Node, slot any) error {
	const op = "core.OrderedBase.Attach"
	parent := selfContainer(&b.NodeBase, b)
	if err := parent.Accepts(child); err != nil {
		return attachErr(op, child, err)
	}
	switch at := slot.(type) {
	case nil:
		adopt(parent, child)
		b.children = append(b.children, child)
	case int:
		if at < 0 || at > len(b.children) {
			return attachErr(op, child, fmt.Errorf("index %d out of range [0,%d]", at, len(b.children)))
		}
		// Moving a child within its own parent removes it first, which
		// shifts positions after its old index down by one.
		if i := b.indexOf(child); i >= 0 && i < at {
			at--
		}
		adopt(parent, child)
		b.children = append(b.children, nil)
		copy(b.children[at+1:], b.children[at:])
		b.children[at] = child
	default:
		return attachErr(op, child, fmt.Errorf("unsupported slot type %T", slot))
	}
	return nil
}

// Remove detaches child. Order of the remaining children is preserved.
func (b *OrderedBase) Remove(child Node) bool {
	i := b.indexOf(child)
	if i < 0 {
		return false
	}
	b.children = append(b.children[:i], b.children[i+1:]...)
	child.setParent(nil)
	return true
}

func (b *OrderedBase) indexOf(child Node) int {
	for i, c := range b.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Children returns the child sequence in attachment order.
func (b *OrderedBase) Children() []Node {
	out := make([]Node, len(b.children))
	copy(out, b.children)
	return out
}

// SlotBase is a container base holding a single occupant. Attaching a
// second node replaces the first: the prior occupant is detached but not
// disposed; releasing its resources stays with the caller.
type SlotBase struct {
	NodeBase
	occupant Node
}

// Attach places child in the slot, detaching any prior occupant.
// Only the nil slot is meaningful for single-slot containers.
func (b *SlotBase) Attach(child Node, slot any) error {
	const op = "core.SlotBase.Attach"
	if slot != nil {
		return attachErr(op, child, fmt.Errorf("single-slot container takes no slot, got %T", slot))
	}
	parent := selfContainer(&b.NodeBase, b)
	if err := parent.Accepts(child); err != nil {
		return attachErr(op, child, err)
	}
	if prev := b.occupant; prev != nil && prev != child {
		prev.setParent(nil)
	}
	adopt(parent, child)
	b.occupant = child
	return nil
}

// Remove clears the slot if child is the occupant.
func (b *SlotBase) Remove(child Node) bool {
	if b.occupant != child || child == nil {
		return false
	}
	b.occupant = nil
	child.setParent(nil)
	return true
}

// Occupant returns the current occupant, or nil.
func (b *SlotBase) Occupant() Node { return b.occupant }

// Children returns the occupant as a one-element sequence, or nothing.
func (b *SlotBase) Children() []Node {
	if b.occupant == nil {
		return nil
	}
	return []Node{b.occupant}
}

// RegionBase is a container base that assigns children to named regions.
// Each region holds at most one node; a second assignment to the same
// region replaces the first (detached, not disposed). When the container
// declares a fixed region set, attaching to an unknown name fails.
type RegionBase struct {
	NodeBase
	names   []string // fixed region names; empty means any name is allowed
	order   []string // occupied regions in first-assignment order
	regions map[string]Node
}

// DeclareRegions fixes the set of region names this container accepts.
// Called from the concrete type's constructor.
func (b *RegionBase) DeclareRegions(names ...string) {
	b.names = names
}

// Attach assigns child to the named region. The slot must be a string.
func (b *RegionBase) Attach(child Node, slot any) error {
	const op = "core.RegionBase.Attach"
	name, ok := slot.(string)
	if !ok {
		return attachErr(op, child, fmt.Errorf("region container requires a string slot, got %T", slot))
	}
	if len(b.names) > 0 && !b.allowed(name) {
		return attachErr(op, child, fmt.Errorf("unknown region %q (regions: %v)", name, b.names))
	}
	parent := selfContainer(&b.NodeBase, b)
	if err := parent.Accepts(child); err != nil {
		return attachErr(op, child, err)
	}
	if b.regions == nil {
		b.regions = make(map[string]Node)
	}
	if prev, occupied := b.regions[name]; occupied {
		if prev == child {
			return nil
		}
		prev.setParent(nil)
	} else {
		b.order = append(b.order, name)
	}
	adopt(parent, child)
	b.regions[name] = child
	return nil
}

// Remove detaches child from whichever region holds it.
func (b *RegionBase) Remove(child Node) bool {
	for name, c := range b.regions {
		if c == child {
			delete(b.regions, name)
			b.dropRegion(name)
			child.setParent(nil)
			return true
		}
	}
	return false
}

// Region returns the occupant of the named region, or nil.
func (b *RegionBase) Region(name string) Node { return b.regions[name] }

// Regions returns a snapshot of occupied regions.
func (b *RegionBase) Regions() map[string]Node {
	out := make(map[string]Node, len(b.regions))
	for k, v := range b.regions {
		out[k] = v
	}
	return out
}

// Children returns the region occupants in first-assignment order.
func (b *RegionBase) Children() []Node {
	out := make([]Node, 0, len(b.order))
	for _, name := range b.order {
		if c, ok := b.regions[name]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (b *RegionBase) allowed(name string) bool {
	for _, n := range b.names {
		if n == name {
			return true
		}
	}
	return false
}

func (b *RegionBase) dropRegion(name string) {
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			return
		}
	}
}

func attachErr(op string, child Node, cause error) error {
	err := errors.New(op, errors.KindInvalidAttachment, cause)
	if child != nil {
		err.Node = child.ID()
	}
	return err
}
