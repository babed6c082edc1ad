// Package dfs defines types and options for depth-first search over a
// molecular adjacency, including pre-/post-order hooks, neighbor ordering,
// full-graph (forest) traversal, and back-edge (ring closure) reporting.
package dfs

import "errors"

// VertexState represents the DFS visitation state of an atom.
const (
	White = iota // White: not visited yet.
	Gray         // Gray: on the recursion stack.
	Black        // Black: fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start atom index is out of range.
	ErrStartNotFound = errors.New("dfs: start atom not found")
)

// Graph is the adjacency view DFS needs. *molgraph.Graph satisfies it.
type Graph interface {
	NumAtoms() int
	Neighbors(idx int) []int
}

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// OnVisit, if non-nil, is invoked when an atom is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(idx int) error

	// OnExit, if non-nil, is invoked after all descendants are explored (post-order).
	OnExit func(idx int) error

	// NeighborLess, if non-nil, orders the neighbors of each atom before
	// they are explored. Without it neighbors follow bond insertion order.
	NeighborLess func(a, b int) bool

	// FullTraversal restarts DFS from every unvisited atom (forest traversal),
	// in ascending index order.
	FullTraversal bool
}

// DefaultOptions returns DFSOptions with no hooks, insertion-order neighbors
// and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(idx int) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(idx int) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithNeighborOrder explores neighbors in the order defined by less.
func WithNeighborOrder(less func(a, b int) bool) Option {
	return func(o *DFSOptions) { o.NeighborLess = less }
}

// WithFullTraversal enables forest traversal over all components.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// BackEdge is a non-tree bond found during traversal: From is the atom being
// explored, To is a Gray ancestor. In a molecule every back edge closes a ring.
type BackEdge struct {
	From int
	To   int
}

// DFSResult captures the outcome of a depth-first traversal.
// Slices are indexed by atom; unvisited atoms have Depth and Parent -1.
type DFSResult struct {
	// Preorder lists atoms in discovery order.
	Preorder []int

	// Order lists atoms in finishing order (post-order).
	Order []int

	// Depth is the tree distance from the root of each atom's DFS tree.
	Depth []int

	// Parent is the tree parent, -1 for roots and unvisited atoms.
	Parent []int

	// Visited flags atoms reached during traversal.
	Visited []bool

	// BackEdges lists ring-closing bonds in the order they were found.
	BackEdges []BackEdge
}
