package elements

import "github.com/go-arbor/arbor/pkg/core"

// Frame is a single-slot container with an optional title. Assigning a
// second content node replaces the first; the replaced node is detached
// but not disposed.
type Frame struct {
	core.SlotBase
	Title string
}

var _ core.Container = (*Frame)(nil)

// NewFrame creates an empty Frame.
func NewFrame() *Frame {
	f := &Frame{}
	f.SetSelf(f)
	return f
}

// Content returns the node occupying the frame, or nil.
func (f *Frame) Content() core.Node { return f.Occupant() }

// SetContent places content in the frame, replacing any prior occupant.
func (f *Frame) SetContent(content core.Node) error {
	return f.Attach(content, nil)
}
