// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindIO            ErrorKind = "io"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op    string
	Kind  ErrorKind
	Path  string // optional: relevant file path
	Field string // optional: offending YAML field
	Err   error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Field != "" {
		base += fmt.Sprintf(" %s", e.Field)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is maps kinds onto the package sentinels.
func (e *OpError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrInvalidConfig:
		return e.Kind == KindInvalidConfig
	}
	return false
}

// IsKind reports whether err carries an *OpError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

func invalidField(op, path, field, msg string) error {
	return &OpError{Op: op, Kind: KindInvalidConfig, Path: path, Field: field, Err: errors.New(msg)}
}
