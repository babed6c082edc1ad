// Package config loads the molbridge CLI configuration from TOML.
//
// File layout:
//
//	[parser]
//	sanitize  = true
//	remove_hs = true
//
//	[output]
//	format = "text"   # text | json | yaml | msgpack
//	color  = "auto"   # auto | on | off
//
//	[batch]
//	jobs = 4          # 0 means one per CPU
//
//	[log]
//	level = "info"    # debug | info | warn | error
//	json  = false
//
// Missing keys keep their defaults. Values are checked with struct tags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Parser holds parse-time switches.
type Parser struct {
	Sanitize bool `toml:"sanitize"`
	RemoveHs bool `toml:"remove_hs"`
}

// Output selects the report encoding.
type Output struct {
	Format string `toml:"format" validate:"oneof=text json yaml msgpack"`
	Color  string `toml:"color" validate:"oneof=auto on off"`
}

// Batch configures the batch command.
type Batch struct {
	Jobs int `toml:"jobs" validate:"gte=0,lte=1024"`
}

// Log configures the CLI logger.
type Log struct {
	Level string `toml:"level" validate:"oneof=debug info warn warning error"`
	JSON  bool   `toml:"json"`
}

// Config is the whole file.
type Config struct {
	Parser Parser `toml:"parser"`
	Output Output `toml:"output"`
	Batch  Batch  `toml:"batch"`
	Log    Log    `toml:"log"`
}

var validate = validator.New()

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Parser: Parser{Sanitize: true, RemoveHs: true},
		Output: Output{Format: "text", Color: "auto"},
		Batch:  Batch{Jobs: 0},
		Log:    Log{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}
	cfg.Normalize()
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Decode parses TOML text over the defaults.
func Decode(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	cfg.Normalize()
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Normalize trims and lower-cases the enumerated string fields so that
// "JSON" or " Warn" pass validation. Callers that override fields after
// Load should call it again before Validate.
func (c *Config) Normalize() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (value %v)", ErrInvalid, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}
