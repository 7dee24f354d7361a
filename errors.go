package spritepack

import (
	"errors"
	"fmt"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

type configurationError struct {
	message string
}

// NewConfigurationError creates an error for input or options that can
// never be packed, e.g. a sprite larger than the maximum sheet size.
func NewConfigurationError(msg string, v ...interface{}) error {
	return configurationError{fmt.Sprintf(msg, v...)}
}

func (c configurationError) Error() string {
	return "configuration error: " + c.message
}

// IsConfigurationError checks if the given error (or one it wraps) is a
// configuration error.
func IsConfigurationError(err error) bool {
	var c configurationError
	return errors.As(err, &c)
}

type invariantViolation struct {
	message string
}

// NewInvariantViolation creates an error for broken internal guarantees,
// e.g. a packer that returns overlapping anchors.
func NewInvariantViolation(msg string, v ...interface{}) error {
	return invariantViolation{fmt.Sprintf(msg, v...)}
}

func (i invariantViolation) Error() string {
	return "invariant violation: " + i.message
}

// IsInvariantViolation checks if the given error (or one it wraps) is an
// invariant violation.
func IsInvariantViolation(err error) bool {
	var i invariantViolation
	return errors.As(err, &i)
}
