package elements

import (
	"fmt"

	"github.com/go-arbor/arbor/pkg/core"
)

// Label is a leaf node carrying display text.
type Label struct {
	core.NodeBase
	Text string
}

// NewLabel creates an empty Label.
func NewLabel() *Label {
	l := &Label{}
	l.SetSelf(l)
	return l
}

// Button is a leaf node with an action registration slot.
type Button struct {
	core.NodeBase
	Text string

	onAction []func()
}

// NewButton creates an empty Button.
func NewButton() *Button {
	b := &Button{}
	b.SetSelf(b)
	b.OnDispose(func() { b.onAction = nil })
	return b
}

// OnAction registers an action handler. Handlers run in registration
// order when the button fires.
func (b *Button) OnAction(fn func()) {
	if fn != nil {
		b.onAction = append(b.onAction, fn)
	}
}

// Fire invokes the registered handlers. Marshaling results of any
// background work back onto the owning goroutine is the handler's
// obligation.
func (b *Button) Fire() {
	for _, fn := range b.onAction {
		fn()
	}
}

// Input is a leaf node holding an editable text value.
type Input struct {
	core.NodeBase
	Value       string
	Placeholder string
}

// NewInput creates an empty Input.
func NewInput() *Input {
	i := &Input{}
	i.SetSelf(i)
	return i
}

// Spacer is a leaf node reserving a fixed amount of space.
type Spacer struct {
	core.NodeBase
	Size float64
}

// NewSpacer creates a spacer of the given size. A negative size fails
// with invalid_argument.
func NewSpacer(size float64) (*Spacer, error) {
	if size < 0 {
		return nil, fmt.Errorf("spacer size must be non-negative, got %v", size)
	}
	s := &Spacer{Size: size}
	s.SetSelf(s)
	return s, nil
}
