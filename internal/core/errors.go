package core

import (
	"errors"
	"fmt"
)

// UsageError reports command-line input that contradicts itself.
// It is always raised before any file is written.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// NewUsageError returns a *UsageError carrying msg verbatim.
func NewUsageError(msg string) error {
	return &UsageError{Msg: msg}
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// IsUsageError reports whether err is or wraps a *UsageError.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
