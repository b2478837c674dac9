package treeline

// Connector prefixes. A child's first line gets a branch connector; every
// following line of its subtree gets a continuation that either carries the
// trunk past it (siblings still follow) or leaves a gap (last child).
const (
	branchPrefix = "├── "
	lastPrefix   = "└── "
	trunkPrefix  = "│   "
	gapPrefix    = "    "
)

// Node is the capability a tree type must provide to be rendered. T is the
// implementing type itself, so Children returns concrete nodes with no
// wrapping:
//
//	type Item struct{ ... }
//	func (i *Item) Name() string       { ... }
//	func (i *Item) Children() []*Item  { ... }
//
// Name is called once per node per render and must return the node's
// display label. Children must return the immediate children in the order
// they should appear; the renderer never sorts, dedupes, or validates them.
type Node[T any] interface {
	Name() string
	Children() []T
}

// Render renders the tree rooted at node, depth-first and pre-order,
// returning one line per node with no trailing line terminators. Line 0 is
// always the root's name with no connector; joining the lines is the
// caller's responsibility.
//
// Render is total over finite acyclic trees: there are no error conditions,
// no side effects, and re-rendering an unmutated tree yields byte-identical
// output. The finite-acyclic precondition is not checked (see the package
// documentation).
func Render[T Node[T]](node T) []string {
	lines := []string{node.Name()}
	children := node.Children()
	for i, child := range children {
		last := i == len(children)-1
		for j, line := range Render(child) {
			switch {
			case j == 0 && last:
				lines = append(lines, lastPrefix+line)
			case j == 0:
				lines = append(lines, branchPrefix+line)
			case last:
				lines = append(lines, gapPrefix+line)
			default:
				lines = append(lines, trunkPrefix+line)
			}
		}
	}
	return lines
}
