// Package molfile reads and writes MDL V2000 connection tables (molblocks).
//
// Read honors charges from both the atom block and "M  CHG" lines (the latter
// win), isotopes from "M  ISO", and aromatic bond type 4. Strict parsing,
// the default, rejects short lines, unknown bond types and a missing
// "M  END"; WithStrictParsing(false) relaxes all three.
package molfile
