// Package cerrors provides custom error types for craftcon.
// These error types carry stable codes so callers can distinguish
// recoverable grammar-derivation warnings from transport failures.
package cerrors

import (
	"fmt"
)

// CraftconError is the base interface for all craftcon errors
type CraftconError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all craftcon errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// HelpParseError reports a help line whose bracket or placeholder syntax
// could not be parsed. It is always recoverable: the offending line is
// skipped and the rest of the help dump still builds.
type HelpParseError struct {
	baseError
	Line string
}

// NewHelpParseError creates a new help parse error
func NewHelpParseError(line string, message string) *HelpParseError {
	return &HelpParseError{
		baseError: baseError{
			code:    "HELP_PARSE",
			message: message,
		},
		Line: line,
	}
}

// GrammarConflictError reports two variants of the same command that cannot
// be merged into one syntax tree. The first-seen variant is kept.
type GrammarConflictError struct {
	baseError
	Command string
}

// NewGrammarConflictError creates a new grammar conflict error
func NewGrammarConflictError(command string, message string) *GrammarConflictError {
	return &GrammarConflictError{
		baseError: baseError{
			code:    "GRAMMAR_CONFLICT",
			message: message,
		},
		Command: command,
	}
}

// ProtocolError represents errors in the RCON wire exchange
type ProtocolError struct {
	baseError
	Op string
}

// NewProtocolError creates a new protocol error
func NewProtocolError(op string, message string, cause error) *ProtocolError {
	return &ProtocolError{
		baseError: baseError{
			code:    "RCON_PROTOCOL",
			message: message,
			cause:   cause,
		},
		Op: op,
	}
}

// AuthError represents a rejected RCON authentication attempt
type AuthError struct {
	baseError
	Addr string
}

// NewAuthError creates a new authentication error
func NewAuthError(addr string, message string) *AuthError {
	return &AuthError{
		baseError: baseError{
			code:    "RCON_AUTH",
			message: message,
		},
		Addr: addr,
	}
}

// ConfigError represents errors in configuration files
type ConfigError struct {
	baseError
	Path string
}

// NewConfigError creates a new configuration error
func NewConfigError(path string, message string, cause error) *ConfigError {
	return &ConfigError{
		baseError: baseError{
			code:    "CONFIG_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}
