package core

// Test node types. Constructors mirror how concrete element kinds embed
// the container bases and register themselves with SetSelf.

type testLeaf struct {
	NodeBase
}

func newLeaf(id string) *testLeaf {
	l := &testLeaf{}
	l.SetSelf(l)
	l.SetID(id)
	return l
}

type testGroup struct {
	OrderedBase
}

func newGroup(id string) *testGroup {
	g := &testGroup{}
	g.SetSelf(g)
	g.SetID(id)
	return g
}

type testFrame struct {
	SlotBase
}

func newFrame(id string) *testFrame {
	f := &testFrame{}
	f.SetSelf(f)
	f.SetID(id)
	return f
}

type testRegion struct {
	RegionBase
}

func newRegion(id string, names ...string) *testRegion {
	r := &testRegion{}
	r.SetSelf(r)
	r.SetID(id)
	r.DeclareRegions(names...)
	return r
}

// pickyGroup only accepts *testLeaf children, exercising the Accepts
// override dispatch through SetSelf.
type pickyGroup struct {
	OrderedBase
}

func newPickyGroup(id string) *pickyGroup {
	g := &pickyGroup{}
	g.SetSelf(g)
	g.SetID(id)
	return g
}

func (g *pickyGroup) Accepts(child Node) error {
	if _, ok := child.(*testLeaf); !ok {
		return errLeafOnly
	}
	return nil
}

type leafOnlyError struct{}

func (leafOnlyError) Error() string { return "accepts only leaf nodes" }

var errLeafOnly = leafOnlyError{}

func ids(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
