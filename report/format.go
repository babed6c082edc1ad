// File: format.go
// Role: Output format selection and the encoders behind it.

package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgPack Format = "msgpack"
)

// ErrFormat reports an unknown format name.
var ErrFormat = errors.New("report: unknown format")

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatMsgPack:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, s)
	}
}

// Option configures Write.
type Option func(*options)

type options struct {
	color bool
}

// WithColor enables ANSI colors in the text format.
func WithColor(on bool) Option {
	return func(o *options) { o.color = on }
}

// Write encodes items in format f. Structured formats emit one document
// holding the whole list; text emits one block per item.
func Write(w io.Writer, f Format, items []Summary, opts ...Option) error {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return err
		}
		return enc.Close()
	case FormatMsgPack:
		return msgpack.NewEncoder(w).Encode(items)
	case FormatText:
		return newTextWriter(w, o.color).summaries(items)
	default:
		return fmt.Errorf("%w: %q", ErrFormat, string(f))
	}
}

// ReadMsgPack decodes a list written with FormatMsgPack.
func ReadMsgPack(r io.Reader) ([]Summary, error) {
	var items []Summary
	if err := msgpack.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("report: decode msgpack: %w", err)
	}

	return items, nil
}
