// Package treeline renders in-memory trees as tree(1)-style text.
//
// # Overview
//
// Given the root of a tree, [Render] produces one line of text per node,
// connected with the box-drawing characters familiar from directory
// listings:
//
//	parent
//	├── child 1
//	├── child 2
//	│   ├── grandchild 1
//	│   └── grandchild 2
//	└── child 3
//
// The renderer is a pure function: it performs no I/O, never mutates the
// input tree, and returns a freshly allocated slice of lines (without
// trailing newlines) for the caller to join, print, or compare.
//
// # Rendering Your Own Types
//
// Any type can be rendered by satisfying the [Node] constraint - a display
// label and an ordered child slice of the same type:
//
//	type Dir struct {
//		Path    string
//		Entries []*Dir
//	}
//
//	func (d *Dir) Name() string     { return d.Path }
//	func (d *Dir) Children() []*Dir { return d.Entries }
//
//	lines := treeline.Render(root)
//	fmt.Println(strings.Join(lines, "\n"))
//
// Callers without a tree type of their own can build one inline with
// [Basic] via [New] and [Basic.Add].
//
// # Preconditions
//
// The tree reachable from the root must be finite and acyclic. This is not
// checked: a cycle makes [Render] recurse forever, and extreme depth
// consumes call-stack space proportional to depth. Callers rendering
// untrusted or unbounded input should impose their own depth limits before
// calling.
package treeline
