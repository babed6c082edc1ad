// Package molgraph provides the in-memory molecular graph used by the engine:
// atoms as nodes, bonds as undirected edges, addressed by dense indices.
//
// The Graph G = (A, B) supports:
//
//   - Atom insertion/removal with index compaction (RemoveAtom shifts later indices).
//   - Bond insertion/removal between distinct atoms (no self-bonds, no parallel bonds).
//   - A generation counter bumped on every atom insertion/removal, so positional
//     references held elsewhere can detect that they may point at a different atom.
//   - A per-atom property cache (explicit valence, implicit hydrogens) refreshed only
//     by UpdatePropertyCache/UpdateAtomCache, with a stale flag set by mutations.
//   - Deep Clone: the copy shares no Atom or Bond pointer with the source.
//
// Concurrency:
//
//	Graph has no internal locking. Use one Graph per goroutine, or guard it
//	externally. Clones are independent and may move to other goroutines.
//
// Encodings:
//
//	BondType and Hybridization use the raw integer values of the engine's
//	enumerations, so values can cross API boundaries as plain integers.
package molgraph
