package smiles

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned for input that holds no SMILES token.
	ErrEmpty = errors.New("smiles: empty input")

	// ErrSyntax is wrapped by every *SyntaxError.
	ErrSyntax = errors.New("smiles: syntax error")
)

// SyntaxError reports malformed SMILES with the byte offset where parsing stopped.
type SyntaxError struct {
	Input  string
	Pos    int
	Reason string
}

// Error implements error.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("smiles: %s at position %d in %q", e.Reason, e.Pos, e.Input)
}

// Unwrap exposes ErrSyntax to errors.Is.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }
