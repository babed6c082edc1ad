// Package molbridge gives Go code owned, independent handles onto molecules
// held by an in-memory molecular graph engine.
//
// What is molbridge?
//
//	A small, pure-Go adapter that brings together:
//		• Parsing: SMILES (with sanitize / remove-Hs switches) and V2000 molblocks
//		• Writing: canonical, deterministic SMILES and V2000 molblocks
//		• Diagnostics: typed problem records (valence, kekulization, molecule-wide)
//		• Atom access: indexed atom references with getters and setters
//		• Cache control: explicit property-cache refresh, strict or lenient
//		• Standardizing: largest-fragment parent and charge neutralization
//
// Packages:
//
//	mol/       - public handle API: Mol, Atom, ParserParams, Problem, errors
//	molgraph/  - the graph engine: atoms, bonds, property cache, deep clone
//	smiles/    - SMILES reader and canonical writer
//	molfile/   - MDL V2000 molblock reader and writer
//	sanitize/  - valence checks, kekulization, hybridization, hydrogen removal
//	periodic/  - element symbols and allowed valences
//	dfs/, bfs/ - traversals, ring perception and fragment splitting
//	report/    - text / JSON / YAML / msgpack summaries
//	cmd/molbridge - command-line front end (canon, check, atoms, molblock, batch)
//
// Quick example:
//
//	m, err := mol.FromSmiles("OCC")
//	if err != nil {
//		return err
//	}
//	fmt.Println(m.ToSmiles()) // CCO
//
//	go install github.com/katalvlaran/molbridge/cmd/molbridge@latest
package molbridge
