// Package bfs implements breadth-first search on a molecular adjacency.
//
// What:
//
//   - BFS: visits atoms in increasing bond distance from a start atom, with
//     an optional visit hook, depth limit and neighbor filter.
//   - Components: splits a molecule into its disconnected fragments (the
//     pieces a SMILES string separates with ".").
//
// Complexity:
//
//   - BFS:        Time O(V+E), Memory O(V)
//   - Components: Time O(C·V + E) (C components), Memory O(V)
package bfs
