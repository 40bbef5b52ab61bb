// Package config holds the tag navigation settings: the delimiter pair
// and the wrap-around flag.
//
// Validation lives here, at the configuration boundary. The scanner
// assumes non-empty, distinct delimiters and never re-checks them.
package config

import (
	"errors"
	"fmt"
)

// Defaults for the tag delimiter pair.
const (
	DefaultOpen  = "|<"
	DefaultClose = ">|"
)

// Errors returned by configuration validation.
var (
	ErrEmptyDelimiter  = errors.New("delimiter must not be empty")
	ErrEqualDelimiters = errors.New("opening and closing delimiters must differ")
)

// TagConfig configures the tag locator.
type TagConfig struct {
	// Open is the opening delimiter string.
	Open string `toml:"open" yaml:"open"`

	// Close is the closing delimiter string.
	Close string `toml:"close" yaml:"close"`

	// Wrap enables wrap-around retry when a scan reaches a buffer
	// boundary without finding a region.
	Wrap bool `toml:"wrap" yaml:"wrap"`
}

// Config is the root configuration.
type Config struct {
	Tag TagConfig `toml:"tag" yaml:"tag"`
}

// Default returns the configuration defaults.
func Default() Config {
	return Config{
		Tag: TagConfig{
			Open:  DefaultOpen,
			Close: DefaultClose,
			Wrap:  true,
		},
	}
}

// Validate checks the configuration.
// Identical open/close delimiters cannot be disambiguated for nesting
// and are rejected here rather than handled in the scanner.
func (c Config) Validate() error {
	if c.Tag.Open == "" {
		return fmt.Errorf("tag.open: %w", ErrEmptyDelimiter)
	}
	if c.Tag.Close == "" {
		return fmt.Errorf("tag.close: %w", ErrEmptyDelimiter)
	}
	if c.Tag.Open == c.Tag.Close {
		return ErrEqualDelimiters
	}
	return nil
}
