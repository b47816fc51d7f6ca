package errors

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestAlmanacError(t *testing.T) {
	tests := []struct {
		name        string
		errorType   ErrorType
		path        string
		line        int
		message     string
		cause       error
		expectedMsg string
	}{
		{
			name:        "error with path and line",
			errorType:   ErrTypeParsing,
			path:        "/data/input",
			line:        4,
			message:     "expected 3 numbers",
			expectedMsg: "parsing error for /data/input:4: expected 3 numbers",
		},
		{
			name:        "error with path",
			errorType:   ErrTypeInput,
			path:        "/data/input",
			message:     "file not found",
			expectedMsg: "input error for /data/input: file not found",
		},
		{
			name:        "error without path",
			errorType:   ErrTypeConfig,
			message:     "part must be 1 or 2",
			expectedMsg: "config error: part must be 1 or 2",
		},
		{
			name:        "error with cause",
			errorType:   ErrTypeInput,
			path:        "/data/input",
			message:     "file operation failed",
			cause:       errors.New("permission denied"),
			expectedMsg: "input error for /data/input: file operation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &AlmanacError{
				Type:    tt.errorType,
				Path:    tt.path,
				Line:    tt.line,
				Message: tt.message,
				Cause:   tt.cause,
			}

			if err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, err.Error())
			}
			if err.Unwrap() != tt.cause {
				t.Errorf("expected cause %v, got %v", tt.cause, err.Unwrap())
			}
		})
	}
}

func TestAlmanacErrorIs(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		expect bool
	}{
		{
			name:   "same error type",
			err:    &AlmanacError{Type: ErrTypeParsing},
			target: &AlmanacError{Type: ErrTypeParsing},
			expect: true,
		},
		{
			name:   "different error type",
			err:    &AlmanacError{Type: ErrTypeParsing},
			target: &AlmanacError{Type: ErrTypeConfig},
			expect: false,
		},
		{
			name:   "not an AlmanacError",
			err:    &AlmanacError{Type: ErrTypeInput},
			target: errors.New("standard error"),
			expect: false,
		},
		{
			name:   "wrapped typed error",
			err:    fmt.Errorf("loading: %w", NewValidationError("input", "overlap")),
			target: &AlmanacError{Type: ErrTypeValidation},
			expect: true,
		},
		{
			name:   "empty input is an input error",
			err:    NewEmptyInputError("input"),
			target: &AlmanacError{Type: ErrTypeInput},
			expect: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.expect {
				t.Errorf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestTypedConstructors(t *testing.T) {
	cause := errors.New("strconv failure")

	parsing := NewParsingErrorAt("input", 7, "invalid number", cause)
	if parsing.Type != ErrTypeParsing || parsing.Line != 7 || parsing.Cause != cause {
		t.Errorf("unexpected parsing error: %+v", parsing.AlmanacError)
	}

	var pe *ParsingError
	if !errors.As(fmt.Errorf("wrap: %w", parsing), &pe) {
		t.Error("expected errors.As to find ParsingError")
	}

	empty := NewEmptyInputError("input")
	if empty.Message != "file is empty" || empty.Type != ErrTypeInput {
		t.Errorf("unexpected empty input error: %+v", empty.AlmanacError)
	}

	cfg := NewConfigErrorWithPath("almanac.yaml", "bad yaml", cause)
	if cfg.Path != "almanac.yaml" || cfg.Type != ErrTypeConfig {
		t.Errorf("unexpected config error: %+v", cfg.AlmanacError)
	}
}

func TestWrapFileError(t *testing.T) {
	if WrapFileError("x", nil) != nil {
		t.Error("expected nil for nil error")
	}

	missing := filepath.Join(t.TempDir(), "missing")
	_, statErr := os.Stat(missing)

	err := WrapFileError(missing, statErr)
	var nf *FileNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected FileNotFoundError, got %T", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("expected the os error to stay in the chain")
	}

	other := WrapFileError("input", errors.New("disk on fire"))
	var nf2 *FileNotFoundError
	if errors.As(other, &nf2) {
		t.Error("generic failure should not be reported as not found")
	}
	var ie *InputError
	if !errors.As(other, &ie) {
		t.Errorf("expected InputError, got %T", other)
	}
}

func TestChain(t *testing.T) {
	root := errors.New("root cause")
	mid := NewParsingError("input", "bad token", root)
	top := fmt.Errorf("loading almanac: %w", mid)

	chain := Chain(top)
	if len(chain) != 3 {
		t.Fatalf("expected 3 errors in chain, got %d: %v", len(chain), chain)
	}
	if chain[2] != root {
		t.Errorf("expected root cause last, got %v", chain[2])
	}

	if Chain(nil) != nil {
		t.Error("expected empty chain for nil")
	}
}
