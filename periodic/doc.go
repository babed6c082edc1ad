// Package periodic is the element catalog used by the molecular graph engine:
// symbols, atomic numbers and the allowed valence lists that drive implicit
// hydrogen counting and valence checks.
package periodic
