// File: errors.go
// Role: Sentinel errors and typed failure values of the adapter.
// Policy:
//   - Every recoverable failure is a typed value wrapping one sentinel.
//   - Match with errors.Is (sentinel) or errors.As (detail).

package mol

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is wrapped by *ParseError: malformed text or failed sanitization.
	ErrParse = errors.New("mol: parse failed")

	// ErrAtomIndex is wrapped by *IndexError: atom index out of range.
	ErrAtomIndex = errors.New("mol: atom index out of range")

	// ErrRefresh is wrapped by *RefreshError: strict cache refresh rejected the graph.
	ErrRefresh = errors.New("mol: property cache refresh rejected molecule")

	// ErrSanitize is wrapped by *SanitizeError.
	ErrSanitize = errors.New("mol: sanitization failed")

	// ErrStaleAtom marks use of an Atom whose molecule gained or lost atoms.
	ErrStaleAtom = errors.New("mol: stale atom reference")

	// ErrBond reports a rejected bond edit.
	ErrBond = errors.New("mol: bond operation failed")

	// ErrValue reports an out-of-domain property value.
	ErrValue = errors.New("mol: invalid property value")
)

// ParseError is returned by the constructors. No molecule is returned with it.
type ParseError struct {
	// Input is the text given to the parser.
	Input string

	// Reason is the engine's explanation.
	Reason string

	// Problem is set when parsing succeeded but sanitization failed.
	Problem Problem

	// Err is the underlying engine error.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("mol: cannot parse %q: %s", e.Input, e.Reason)
}

// Unwrap exposes ErrParse and the engine error.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// IndexError reports an atom index outside [0, NumAtoms).
type IndexError struct {
	Index    int
	NumAtoms int
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("mol: atom index %d out of range [0, %d)", e.Index, e.NumAtoms)
}

// Unwrap exposes ErrAtomIndex.
func (e *IndexError) Unwrap() error { return ErrAtomIndex }

// RefreshError carries the problem that made a strict refresh fail.
// The molecule keeps its mutated state.
type RefreshError struct {
	Problem Problem
}

// Error implements error.
func (e *RefreshError) Error() string {
	return "mol: refresh: " + e.Problem.Message()
}

// Unwrap exposes ErrRefresh.
func (e *RefreshError) Unwrap() error { return ErrRefresh }

// SanitizeError carries the first problem found by Sanitize.
type SanitizeError struct {
	Problem Problem
}

// Error implements error.
func (e *SanitizeError) Error() string {
	return "mol: sanitize: " + e.Problem.Message()
}

// Unwrap exposes ErrSanitize.
func (e *SanitizeError) Unwrap() error { return ErrSanitize }
