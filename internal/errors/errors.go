// Package errors provides a hierarchical error system for almanac operations.
// It implements typed errors that can be inspected and handled differently
// based on their category, so the CLI can report every failure with the
// file and line it came from.
package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

// ErrorType represents the category of error for classification and handling.
type ErrorType string

// Error type constants define the categories of errors that can occur while
// reading, parsing and solving an almanac.
const (
	ErrTypeInput      ErrorType = "input"
	ErrTypeConfig     ErrorType = "config"
	ErrTypeParsing    ErrorType = "parsing"
	ErrTypeValidation ErrorType = "validation"
)

// AlmanacError is the base error type that provides structured error information.
// Path and Line locate the failure in the input file when known; Cause keeps
// the underlying error available to errors.Unwrap.
type AlmanacError struct {
	Type    ErrorType
	Path    string
	Line    int
	Message string
	Cause   error
}

func (e *AlmanacError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s error for %s:%d: %s", e.Type, e.Path, e.Line, e.Message)
	case e.Path != "":
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Path, e.Message)
	default:
		return fmt.Sprintf("%s error: %s", e.Type, e.Message)
	}
}

func (e *AlmanacError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an AlmanacError of the same type, so that
// errors.Is can match on category anywhere in a chain.
func (e *AlmanacError) Is(target error) bool {
	t, ok := target.(*AlmanacError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// InputError represents failures reading the input file.
type InputError struct {
	*AlmanacError
}

// NewInputError creates an input error with file context.
func NewInputError(path, message string, cause error) *InputError {
	return &InputError{
		AlmanacError: &AlmanacError{
			Type:    ErrTypeInput,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// FileNotFoundError represents errors when the input file does not exist.
type FileNotFoundError struct {
	*InputError
}

// NewFileNotFoundError creates a file not found error.
func NewFileNotFoundError(path string, cause error) *FileNotFoundError {
	return &FileNotFoundError{
		InputError: NewInputError(path, "file not found", cause),
	}
}

// EmptyInputError is returned when a file holds no usable data. It is
// reported separately from parse failures because nothing was there to parse.
type EmptyInputError struct {
	*InputError
}

// NewEmptyInputError creates a "no data" error for path.
func NewEmptyInputError(path string) *EmptyInputError {
	return &EmptyInputError{
		InputError: NewInputError(path, "file is empty", nil),
	}
}

// ConfigError represents configuration validation and loading errors.
type ConfigError struct {
	*AlmanacError
}

// NewConfigError creates a configuration error without path context.
// Used for flag validation failures that don't relate to a specific file.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		AlmanacError: &AlmanacError{
			Type:    ErrTypeConfig,
			Message: message,
			Cause:   cause,
		},
	}
}

// NewConfigErrorWithPath creates a configuration error with file context.
func NewConfigErrorWithPath(path, message string, cause error) *ConfigError {
	return &ConfigError{
		AlmanacError: &AlmanacError{
			Type:    ErrTypeConfig,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// ParsingError represents malformed almanac content: a missing separator,
// a non-numeric token or a wrong token count.
type ParsingError struct {
	*AlmanacError
}

// NewParsingError creates a parsing error with file context.
func NewParsingError(path, message string, cause error) *ParsingError {
	return &ParsingError{
		AlmanacError: &AlmanacError{
			Type:    ErrTypeParsing,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// NewParsingErrorAt creates a parsing error pointing at a 1-based line.
func NewParsingErrorAt(path string, line int, message string, cause error) *ParsingError {
	err := NewParsingError(path, message, cause)
	err.Line = line
	return err
}

// ValidationError represents well-formed input that breaks a data invariant,
// such as a zero-length rule or two rules claiming the same source values.
type ValidationError struct {
	*AlmanacError
}

// NewValidationError creates a validation error with file context.
func NewValidationError(path, message string) *ValidationError {
	return &ValidationError{
		AlmanacError: &AlmanacError{
			Type:    ErrTypeValidation,
			Path:    path,
			Message: message,
		},
	}
}

// WrapFileError converts an I/O error into a typed InputError.
func WrapFileError(path string, err error) error {
	if err == nil {
		return nil
	}

	absPath, absErr := filepath.Abs(path)
	if absErr != nil {
		absPath = path
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return NewFileNotFoundError(absPath, err)
	}
	return NewInputError(absPath, "file operation failed", err)
}

// Chain returns err followed by every cause reachable through Unwrap.
func Chain(err error) []error {
	var chain []error
	for err != nil {
		chain = append(chain, err)
		err = stderrors.Unwrap(err)
	}
	return chain
}
