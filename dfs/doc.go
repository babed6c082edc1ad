// Package dfs implements depth-first traversal and ring perception on a
// molecular adjacency (any type with NumAtoms and Neighbors, such as
// *molgraph.Graph).
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Supports pre-/post-order hooks, deterministic neighbor ordering and
//     forest traversal. Back edges found while exploring are reported; in an
//     undirected molecular graph each back edge closes exactly one ring, which
//     is what a SMILES writer needs for ring-closure digits.
//   - RingBonds / RingAtoms: bonds and atoms that belong to at least one ring.
//   - CycleRank: number of independent rings (E - V + C).
//
// Complexity:
//
//   - DFS:       Time O(V+E), Memory O(V)
//   - RingBonds: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       if the graph is nil.
//   - ErrStartNotFound  if the start atom is out of range.
//   - any error returned by OnVisit or OnExit (wrapped).
package dfs
