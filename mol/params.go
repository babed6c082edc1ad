package mol

// ParserParams configures FromSmilesWithParams. A value is owned by its
// creator; edits are seen by every later parse that uses it.
type ParserParams struct {
	sanitize bool
	removeHs bool
}

// NewParserParams returns the engine defaults: sanitize and remove Hs.
func NewParserParams() *ParserParams {
	return &ParserParams{sanitize: true, removeHs: true}
}

// SetSanitize toggles sanitization after parsing.
func (p *ParserParams) SetSanitize(on bool) { p.sanitize = on }

// Sanitize reports the sanitize flag.
func (p *ParserParams) Sanitize() bool { return p.sanitize }

// SetRemoveHs toggles folding of explicit hydrogen atoms. It only applies
// when sanitizing.
func (p *ParserParams) SetRemoveHs(on bool) { p.removeHs = on }

// RemoveHs reports the remove-Hs flag.
func (p *ParserParams) RemoveHs() bool { return p.removeHs }

// MolBlockParams configures FromMolBlock.
type MolBlockParams struct {
	Sanitize      bool
	RemoveHs      bool
	StrictParsing bool
}

// DefaultMolBlockParams enables all three options.
func DefaultMolBlockParams() MolBlockParams {
	return MolBlockParams{Sanitize: true, RemoveHs: true, StrictParsing: true}
}
