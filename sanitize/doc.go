// Package sanitize holds the engine's structural checks: valence validation,
// aromatic ring membership, Kekulé feasibility and hybridization assignment.
//
// Sanitize stops at the first problem and returns it as an error; Detect
// collects every problem without modifying the molecule. Both report
// *Problem records whose Type strings are the engine's category names
// (AtomValenceException, AtomKekulizeException, KekulizeException).
package sanitize
