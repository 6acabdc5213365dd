// Package apperrors defines the typed errors the overlay surfaces at the
// process boundary and the exit codes they map to.
package apperrors

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1
	ExitErrorConfig   = 4
	ExitErrorPlatform = 5
)

// ConfigError reports a configuration file that could not be used.
type ConfigError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Cause }

// NewConfigError creates a ConfigError with a formatted message.
func NewConfigError(path string, cause error, format string, a ...any) error {
	return &ConfigError{Path: path, Message: fmt.Sprintf(format, a...), Cause: cause}
}

// PlatformError reports a failure of an OS facility: metrics, idle
// detection, hotkey registration or the window system.
type PlatformError struct {
	Op    string
	Cause error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *PlatformError) Unwrap() error { return e.Cause }

// NewPlatformError wraps cause with the name of the failed operation.
func NewPlatformError(op string, cause error) error {
	return &PlatformError{Op: op, Cause: cause}
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return ExitErrorConfig
	}
	var platErr *PlatformError
	if errors.As(err, &platErr) {
		return ExitErrorPlatform
	}
	return ExitErrorGeneric
}
