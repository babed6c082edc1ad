// Package bfs provides tunable options and error definitions
// for breadth-first search over a molecular adjacency.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start atom index is out of range.
	ErrStartNotFound = errors.New("bfs: start atom not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Graph is the adjacency view BFS needs. *molgraph.Graph satisfies it.
type Graph interface {
	NumAtoms() int
	Neighbors(idx int) []int
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// OnVisit is called when visiting an atom. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(idx, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip bonds by returning false.
	// Called for each bond curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with no depth limit, no filtering and
// a no-op visit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithOnVisit installs fn as the visit hook. A nil fn is ignored.
func WithOnVisit(fn func(idx, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits exploration depth. Negative values are rejected.
func WithMaxDepth(limit int) Option {
	return func(o *BFSOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be >= 0, got %d", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor installs a neighbor filter. A nil fn is ignored.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a breadth-first traversal.
// Depth and Parent are indexed by atom; unreached atoms have -1.
type BFSResult struct {
	// Order lists atoms in visit order.
	Order []int

	// Depth is the bond distance from the start atom.
	Depth []int

	// Parent is the BFS-tree parent, -1 for the start and unreached atoms.
	Parent []int
}
