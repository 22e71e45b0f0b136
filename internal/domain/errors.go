package domain

import (
	"errors"
	"fmt"
)

// Common domain errors returned by aggregation and divisiveness operations.
var (
	// ErrUnknownStrategy indicates that a strategy name is not registered.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrInvalidConfiguration indicates that configuration is invalid or incomplete.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrOutOfRange indicates a numeric parameter outside its
	// literature-defined domain. Such parameters fail fast and are never
	// silently clamped.
	ErrOutOfRange = errors.New("parameter out of range")

	// ErrMissingVoter indicates that records lack the voter identity
	// required by the exact divisiveness mode.
	ErrMissingVoter = errors.New("voter identity required")
)

// RangeError reports a numeric parameter outside its permitted domain.
// It wraps ErrOutOfRange so callers can test with errors.Is.
type RangeError struct {
	// Param is the name of the offending parameter.
	Param string
	// Value is the rejected value.
	Value float64
	// Domain describes the permitted range, e.g. "[0, 1.6)".
	Domain string
}

// Error implements the error interface for RangeError.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s=%v outside permitted range %s: %v", e.Param, e.Value, e.Domain, ErrOutOfRange)
}

// Unwrap returns ErrOutOfRange, supporting errors.Is matching.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// NewRangeError creates a RangeError for the given parameter.
func NewRangeError(param string, value float64, domain string) *RangeError {
	return &RangeError{Param: param, Value: value, Domain: domain}
}
