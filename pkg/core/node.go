package core

// Node is a single element in a tree. Concrete node types embed
// [NodeBase] and call SetSelf in their constructor.
type Node interface {
	// ID returns the node's identity, or "" if none was assigned.
	ID() string
	// SetID assigns the node's identity.
	SetID(id string)
	// Parent returns the owning container, or nil for a detached root.
	Parent() Container
	// Props returns the node's mutable property bag.
	Props() *Props
	// Dispose releases the node's registrations and recursively disposes
	// its children. Detaching a node never disposes it implicitly; callers
	// decide when resources are released.
	Dispose()

	setParent(parent Container)
	self() Node
}

// Container is a node that owns children.
type Container interface {
	Node
	// Attach inserts child according to the container's attachment policy.
	// The slot's meaning is policy-specific: nil for ordered append, an
	// int for positional insert, a string for named regions.
	Attach(child Node, slot any) error
	// Remove detaches child, returning true if it was present.
	// The child is not disposed.
	Remove(child Node) bool
	// Children returns the attached children in attachment order.
	Children() []Node
	// Accepts reports whether child may be attached to this container.
	// A nil return means the child's category is acceptable.
	Accepts(child Node) error
}

// NodeBase supplies the Node boilerplate. Embed it in concrete node types:
//
//	type Label struct {
//	    core.NodeBase
//	    Text string
//	}
//
//	func NewLabel() *Label {
//	    l := &Label{}
//	    l.SetSelf(l)
//	    return l
//	}
type NodeBase struct {
	id       string
	parent   Container
	props    Props
	selfNode Node
	onDispose []func()
	disposed bool
}

// SetSelf records the outermost node value so that embedded container
// bases can dispatch to overridden methods (Accepts in particular).
// Constructors must call it exactly once.
func (b *NodeBase) SetSelf(self Node) {
	b.selfNode = self
}

// ID returns the node's identity, or "" if none was assigned.
func (b *NodeBase) ID() string { return b.id }

// SetID assigns the node's identity.
func (b *NodeBase) SetID(id string) { b.id = id }

// Parent returns the owning container, or nil for a detached root.
func (b *NodeBase) Parent() Container { return b.parent }

// Props returns the node's mutable property bag.
func (b *NodeBase) Props() *Props { return &b.props }

// OnDispose registers fn to run when the node is disposed. Used by node
// types to release handler registrations.
func (b *NodeBase) OnDispose(fn func()) {
	if fn != nil {
		b.onDispose = append(b.onDispose, fn)
	}
}

// Dispose runs the registered dispose hooks once and recursively disposes
// children if the node is a container.
func (b *NodeBase) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	for _, fn := range b.onDispose {
		fn()
	}
	b.onDispose = nil
	if c, ok := b.self().(Container); ok {
		for _, child := range c.Children() {
			child.Dispose()
		}
	}
}

// Disposed reports whether Dispose has run.
func (b *NodeBase) Disposed() bool { return b.disposed }

// Accepts accepts any child. Concrete containers override this to
// restrict the accepted category.
func (b *NodeBase) Accepts(child Node) error { return nil }

func (b *NodeBase) setParent(parent Container) { b.parent = parent }

func (b *NodeBase) self() Node {
	if b.selfNode != nil {
		return b.selfNode
	}
	return nil
}

// adopt wires child to parent, removing it from a former owner first.
// This is the single place the one-parent invariant is enforced.
func adopt(parent Container, child Node) {
	if prev := child.Parent(); prev != nil {
		prev.Remove(child)
	}
	child.setParent(parent)
}

// selfContainer resolves the outermost container for base types, so that
// Accepts overridden on the concrete type is consulted.
func selfContainer(b *NodeBase, fallback Container) Container {
	if s := b.self(); s != nil {
		if c, ok := s.(Container); ok {
			return c
		}
	}
	return fallback
}
