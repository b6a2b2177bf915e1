package relist

import "errors"

// ErrInvalidConfig is matched by every *ConfigError via errors.Is.
var ErrInvalidConfig = errors.New("relist: invalid config")

// Config controls the shape of a list built with New or NewSplit.
//
// Example:
//
//	config := relist.DefaultConfig()
//	config.Separator = ", "
//	config.Count = 2
//	l, err := relist.New(pattern.Digit, config)
type Config struct {
	// Count is the exact number of occurrences a component list matches.
	// Zero matches as many occurrences as possible, at least one.
	// Split lists require zero.
	// Default: 0
	Count int

	// Separator is the literal joining occurrences. For a component list an
	// empty separator means occurrences are adjacent; a split list requires
	// a non-empty separator.
	// Default: ""
	Separator string

	// Lookahead lists literals before which a split list stops. Component
	// lists do not support a lookahead.
	// Default: nil
	Lookahead []string
}

// DefaultConfig returns a configuration for an unbounded list without
// separator.
func DefaultConfig() Config {
	return Config{}
}

// Validate checks the fields shared by component and split lists.
//
// Valid ranges:
//   - Count: 0 or more
//   - Lookahead: no empty literal
func (c Config) Validate() error {
	if c.Count < 0 {
		return &ConfigError{
			Field:   "Count",
			Message: "must not be negative",
		}
	}
	for _, lit := range c.Lookahead {
		if lit == "" {
			return &ConfigError{
				Field:   "Lookahead",
				Message: "must not contain an empty literal",
			}
		}
	}
	return nil
}

// validateComponent checks c for use by a component list.
func (c Config) validateComponent() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if len(c.Lookahead) > 0 {
		return &ConfigError{
			Field:   "Lookahead",
			Message: "only split lists support a lookahead",
		}
	}
	return nil
}

// validateSplit checks c for use by a split list.
func (c Config) validateSplit() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Count != 0 {
		return &ConfigError{
			Field:   "Count",
			Message: "split lists take every part up to the lookahead",
		}
	}
	if c.Separator == "" {
		return &ConfigError{
			Field:   "Separator",
			Message: "must not be empty for a split list",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "relist: invalid config: " + e.Field + ": " + e.Message
}

// Is reports whether target is ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
