package slot

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig marks a machine configuration that can never be played.
	// Matching errors are fatal: a session must not start.
	ErrConfig = errors.New("slot: invalid configuration")

	// ErrInvariant marks a broken contract between engine components,
	// i.e. a bug in the caller rather than bad user input.
	ErrInvariant = errors.New("slot: invariant violation")
)

// ConfigError describes which part of a machine configuration is unusable.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("slot: invalid configuration: %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrConfig) match.
func (e *ConfigError) Unwrap() error {
	return ErrConfig
}

func configErr(field, reason string) error {
	return &ConfigError{Field: field, Reason: reason}
}

func invariantErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}
