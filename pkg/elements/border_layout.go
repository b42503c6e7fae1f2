package elements

import "github.com/go-arbor/arbor/pkg/core"

// Region names accepted by BorderLayout.
const (
	RegionTop    = "top"
	RegionBottom = "bottom"
	RegionLeft   = "left"
	RegionRight  = "right"
	RegionCenter = "center"
)

// BorderLayout assigns children to five named regions. Each region holds
// at most one node; the last assignment to a region wins.
type BorderLayout struct {
	core.RegionBase
}

var _ core.Container = (*BorderLayout)(nil)

// NewBorderLayout creates an empty BorderLayout.
func NewBorderLayout() *BorderLayout {
	l := &BorderLayout{}
	l.SetSelf(l)
	l.DeclareRegions(RegionTop, RegionBottom, RegionLeft, RegionRight, RegionCenter)
	return l
}

// Top returns the occupant of the top region, or nil.
func (l *BorderLayout) Top() core.Node { return l.Region(RegionTop) }

// Bottom returns the occupant of the bottom region, or nil.
func (l *BorderLayout) Bottom() core.Node { return l.Region(RegionBottom) }

// Left returns the occupant of the left region, or nil.
func (l *BorderLayout) Left() core.Node { return l.Region(RegionLeft) }

// Right returns the occupant of the right region, or nil.
func (l *BorderLayout) Right() core.Node { return l.Region(RegionRight) }

// Center returns the occupant of the center region, or nil.
func (l *BorderLayout) Center() core.Node { return l.Region(RegionCenter) }
