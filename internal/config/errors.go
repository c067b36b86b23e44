package config

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by [ConfigAccessError]. Callers match them with
// [errors.Is]; none of them is transient, so a failed load is never retried.
var (
	// ErrAccessBeforeInit is returned by a getter when the field holds no
	// value and defines no fallback.
	ErrAccessBeforeInit = errors.New("has not been initialized")

	// ErrDoubleInit is returned by a setter when the field already holds a
	// value. It signals a duplicate or re-entrant load.
	ErrDoubleInit = errors.New("has already been initialized")

	// ErrParseFailure is returned when a configuration file exists but does
	// not decode into a flat object.
	ErrParseFailure = errors.New("failed to parse configuration file")

	// ErrReadFailure is returned when a configuration file exists but cannot
	// be read (permission denied, path is a directory, ...).
	ErrReadFailure = errors.New("failed to read configuration file")

	// ErrMissingRequired is returned when no source supplies a value for a
	// field that has no default.
	ErrMissingRequired = errors.New("no value for configuration found")

	// ErrInvalidValue is returned when a source supplies a value that cannot
	// be coerced to the field's kind (e.g. "12a" for an integer list).
	ErrInvalidValue = errors.New("invalid configuration value")
)

// ConfigAccessError describes a configuration failure tied to a key, a file,
// or both. Err is always one of the package sentinels, optionally joined with
// the underlying cause.
type ConfigAccessError struct {
	Key  string
	Path string
	Err  error
}

func (e *ConfigAccessError) Error() string {
	switch {
	case e.Key != "" && e.Path != "":
		return fmt.Sprintf("%s (%s): %v", e.Key, e.Path, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Key, e.Err)
	}
}

func (e *ConfigAccessError) Unwrap() error {
	return e.Err
}

func keyError(key string, sentinel error, cause error) error {
	if cause != nil {
		sentinel = fmt.Errorf("%w: %w", sentinel, cause)
	}
	return &ConfigAccessError{Key: key, Err: sentinel}
}

func fileError(path string, sentinel error, cause error) error {
	if cause != nil {
		sentinel = fmt.Errorf("%w: %w", sentinel, cause)
	}
	return &ConfigAccessError{Path: path, Err: sentinel}
}
