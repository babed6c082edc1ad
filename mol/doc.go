// Package mol is the public face of molbridge: molecule handles over the
// molgraph engine.
//
// What it provides:
//   - Handles: *Mol owns one graph; Copy duplicates it deeply, so no two
//     handles ever alias the same atoms.
//   - Parsing: FromSmiles / FromSmilesWithParams (ParserParams with the
//     sanitize and remove-Hs switches) and FromMolBlock. Failures are
//     *ParseError values and never come with a partial handle.
//   - Serialization: ToSmiles (canonical, deterministic, a fixed point after
//     one parse/write cycle), ToMolBlock, String.
//   - Diagnostics: DetectProblems returns a closed set of record variants;
//     only *AtomProblem carries an atom index.
//   - Atom access: Atom returns a generation-checked reference with getters
//     and setters. Setters leave derived values (valence, hydrogen counts)
//     stale until UpdatePropertyCache runs, so several edits can share one
//     recomputation; NeedsRefresh reports the pending state.
//
// Determinism:
//   - ToSmiles depends only on the graph; DetectProblems reports in
//     discovery order (valence, aromatic ring membership, Kekulé check).
//
// Concurrency:
//   - No locking inside. Give each goroutine its own Copy.
package mol
