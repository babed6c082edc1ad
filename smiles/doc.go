// Package smiles reads and writes SMILES line notation over molgraph graphs.
//
// Parse builds a graph from text without computing any derived property;
// Write produces a canonical string: the same graph state always yields the
// same text, and parsing Write's output and writing it again reproduces it.
//
// Canonical ranking (CanonicalRanks) uses iterative invariant refinement with
// lowest-index tie breaking. Chirality marks are accepted on input and dropped.
package smiles
