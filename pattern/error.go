package pattern

import (
	"errors"
	"fmt"
)

// Common pattern errors
var (
	// ErrInvalidPattern indicates a regular expression leaf could not be compiled
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrEmptyLiteralSet indicates a literal set was built without any non-empty literal
	ErrEmptyLiteralSet = errors.New("literal set has no non-empty literals")
)

// CompileError wraps leaf compilation errors with the offending expression.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("pattern: compiling %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidPattern, so that every CompileError
// can be matched with errors.Is regardless of its cause.
func (e *CompileError) Is(target error) bool {
	return target == ErrInvalidPattern
}
