package core

import (
	"testing"

	"github.com/go-arbor/arbor/pkg/errors"
)

func TestOrderedAttach_PreservesCallOrder(t *testing.T) {
	g := newGroup("root")
	for _, id := range []string{"a", "b", "c"} {
		if err := g.Attach(newLeaf(id), nil); err != nil {
			t.Fatalf("Attach(%s): %v", id, err)
		}
	}
	if got := ids(g.Children()); !equalIDs(got, []string{"a", "b", "c"}) {
		t.Errorf("children = %v, want [a b c]", got)
	}
}

func TestOrderedAttach_IntSlotInserts(t *testing.T) {
	tests := []struct {
		name    string
		at      int
		want    []string
		wantErr bool
	}{
		{name: "front", at: 0, want: []string{"x", "a", "b"}},
		{name: "middle", at: 1, want: []string{"a", "x", "b"}},
		{name: "end", at: 2, want: []string{"a", "b", "x"}},
		{name: "negative", at: -1, wantErr: true},
		{name: "past end", at: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGroup("root")
			g.Attach(newLeaf("a"), nil)
			g.Attach(newLeaf("b"), nil)

			err := g.Attach(newLeaf("x"), tt.at)
			if tt.wantErr {
				if !errors.IsInvalidAttachment(err) {
					t.Fatalf("err = %v, want invalid_attachment", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Attach: %v", err)
			}
			if got := ids(g.Children()); !equalIDs(got, tt.want) {
				t.Errorf("children = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrderedAttach_MoveWithinParent(t *testing.T) {
	tests := []struct {
		name string
		move string
		at   int
		want []string
	}{
		{name: "to tail", move: "a", at: 3, want: []string{"b", "c", "a"}},
		{name: "to front", move: "c", at: 0, want: []string{"c", "a", "b"}},
		{name: "forward", move: "a", at: 2, want: []string{"b", "a", "c"}},
		{name: "same position", move: "b", at: 1, want: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGroup("root")
			kids := map[string]*testLeaf{}
			for _, id := range []string{"a", "b", "c"} {
				l := newLeaf(id)
				kids[id] = l
				g.Attach(l, nil)
			}

			if err := g.Attach(kids[tt.move], tt.at); err != nil {
				t.Fatalf("Attach(%s, %d): %v", tt.move, tt.at, err)
			}
			if got := ids(g.Children()); !equalIDs(got, tt.want) {
				t.Errorf("children = %v, want %v", got, tt.want)
			}
			if p := kids[tt.move].Parent(); p == nil || p.ID() != "root" {
				t.Errorf("moved child parent = %v, want root", p)
			}
		})
	}
}

func TestOrderedAttach_RejectsUnsupportedSlot(t *testing.T) {
	g := newGroup("root")
	err := g.Attach(newLeaf("a"), "north")
	if !errors.IsInvalidAttachment(err) {
		t.Fatalf("err = %v, want invalid_attachment", err)
	}
}

func TestOrderedRemove_PreservesSiblingOrder(t *testing.T) {
	g := newGroup("root")
	b := newLeaf("b")
	g.Attach(newLeaf("a"), nil)
	g.Attach(b, nil)
	g.Attach(newLeaf("c"), nil)

	if !g.Remove(b) {
		t.Fatal("Remove returned false for attached child")
	}
	if b.Parent() != nil {
		t.Error("removed child should have nil parent")
	}
	if got := ids(g.Children()); !equalIDs(got, []string{"a", "c"}) {
		t.Errorf("children = %v, want [a c]", got)
	}
	if g.Remove(b) {
		t.Error("second Remove should return false")
	}
}

func TestSingleOwnership_ReparentDetachesFromFormerOwner(t *testing.T) {
	g1 := newGroup("g1")
	g2 := newGroup("g2")
	child := newLeaf("child")

	if err := g1.Attach(child, nil); err != nil {
		t.Fatal(err)
	}
	if err := g2.Attach(child, nil); err != nil {
		t.Fatal(err)
	}

	if len(g1.Children()) != 0 {
		t.Errorf("former owner still holds %v", ids(g1.Children()))
	}
	if got := ids(g2.Children()); !equalIDs(got, []string{"child"}) {
		t.Errorf("new owner children = %v, want [child]", got)
	}
	if child.Parent() != Container(g2) {
		t.Error("child parent should be the new owner")
	}
}

func TestSlotAttach_LastWriteWins(t *testing.T) {
	f := newFrame("frame")
	x := newLeaf("x")
	y := newLeaf("y")

	if err := f.Attach(x, nil); err != nil {
		t.Fatal(err)
	}
	if err := f.Attach(y, nil); err != nil {
		t.Fatal(err)
	}

	if f.Occupant() != Node(y) {
		t.Error("slot should hold the last write")
	}
	if got := ids(f.Children()); !equalIDs(got, []string{"y"}) {
		t.Errorf("children = %v, want [y]", got)
	}
	if x.Parent() != nil {
		t.Error("replaced occupant should be detached")
	}
	if x.Disposed() {
		t.Error("replaced occupant must not be disposed automatically")
	}
}

func TestSlotAttach_RejectsNonNilSlot(t *testing.T) {
	f := newFrame("frame")
	err := f.Attach(newLeaf("x"), 0)
	if !errors.IsInvalidAttachment(err) {
		t.Fatalf("err = %v, want invalid_attachment", err)
	}
}

func TestRegionAttach(t *testing.T) {
	tests := []struct {
		name    string
		slot    any
		wantErr bool
	}{
		{name: "known region", slot: "top"},
		{name: "unknown region", slot: "sideways", wantErr: true},
		{name: "non-string slot", slot: 3, wantErr: true},
		{name: "nil slot", slot: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRegion("layout", "top", "bottom", "center")
			err := r.Attach(newLeaf("x"), tt.slot)
			if tt.wantErr {
				if !errors.IsInvalidAttachment(err) {
					t.Fatalf("err = %v, want invalid_attachment", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Attach: %v", err)
			}
			if r.Region("top") == nil {
				t.Error("region should hold the attached node")
			}
		})
	}
}

func TestRegionAttach_SameRegionReplaces(t *testing.T) {
	r := newRegion("layout", "top", "center")
	x := newLeaf("x")
	y := newLeaf("y")

	r.Attach(x, "center")
	r.Attach(y, "center")

	if r.Region("center") != Node(y) {
		t.Error("region should hold the last write")
	}
	if x.Parent() != nil {
		t.Error("replaced occupant should be detached")
	}
	if got := ids(r.Children()); !equalIDs(got, []string{"y"}) {
		t.Errorf("children = %v, want [y]", got)
	}
}

func TestRegionAttach_MoveBetweenRegions(t *testing.T) {
	r := newRegion("layout", "top", "bottom")
	x := newLeaf("x")

	r.Attach(x, "top")
	r.Attach(x, "bottom")

	if r.Region("top") != nil {
		t.Error("old region should be vacated")
	}
	if r.Region("bottom") != Node(x) {
		t.Error("new region should hold the node")
	}
	if len(r.Children()) != 1 {
		t.Errorf("children = %v, want exactly one", ids(r.Children()))
	}
}

func TestRegionAttach_OpenRegionSet(t *testing.T) {
	r := newRegion("tabs") // no declared regions: any name accepted
	if err := r.Attach(newLeaf("x"), "anything"); err != nil {
		t.Fatalf("open region set should accept any name: %v", err)
	}
}

func TestAcceptsOverride_Dispatches(t *testing.T) {
	g := newPickyGroup("picky")

	if err := g.Attach(newLeaf("ok"), nil); err != nil {
		t.Fatalf("leaf should be accepted: %v", err)
	}
	err := g.Attach(newGroup("nested"), nil)
	if !errors.IsInvalidAttachment(err) {
		t.Fatalf("err = %v, want invalid_attachment", err)
	}
	if got := ids(g.Children()); !equalIDs(got, []string{"ok"}) {
		t.Errorf("rejected child must not appear, children = %v", got)
	}
}

func TestChildrenReturnsSnapshot(t *testing.T) {
	g := newGroup("root")
	g.Attach(newLeaf("a"), nil)

	snapshot := g.Children()
	snapshot[0] = newLeaf("tampered")

	if got := ids(g.Children()); !equalIDs(got, []string{"a"}) {
		t.Errorf("mutating the returned slice must not affect the container, got %v", got)
	}
}
