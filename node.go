package treeline

// Basic is a ready-made tree node for callers that do not have their own
// tree type. Build one inline with [New] or incrementally with [Basic.Add],
// then pass the root to [Render].
//
// The zero value is usable and renders as a single empty line.
type Basic struct {
	name     string
	children []*Basic
}

// New returns a node with the given display label and children.
func New(name string, children ...*Basic) *Basic {
	return &Basic{name: name, children: children}
}

// Add appends children to b, preserving order, and returns b for chaining.
func (b *Basic) Add(children ...*Basic) *Basic {
	b.children = append(b.children, children...)
	return b
}

// Name returns the node's display label.
func (b *Basic) Name() string { return b.name }

// Children returns the node's immediate children in insertion order.
func (b *Basic) Children() []*Basic { return b.children }
