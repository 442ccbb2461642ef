// Package core holds the small set of error types shared between the
// sat, proof, and dimacs packages so that API-contract violations,
// parser errors, and proof I/O failures stay distinguishable at the
// boundary (see spec §7).
package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// ContractError reports an API contract violation: an invalid literal,
// a call made in the wrong incremental-API state, or similar conditions
// that a conforming driver should never trigger. Per spec §7 these abort
// the call rather than propagating as an ordinary error value, so callers
// normally pass them to panic.
type ContractError struct {
	System  string
	Op      string
	Message string
}

func (e *ContractError) Error() string {
	if e.System != "" {
		return fmt.Sprintf("%s.%s: contract violation: %s", e.System, e.Op, e.Message)
	}
	return fmt.Sprintf("%s: contract violation: %s", e.Op, e.Message)
}

// NewContractError builds a ContractError for the given system/operation.
func NewContractError(system, operation, message string) *ContractError {
	return &ContractError{System: system, Op: operation, Message: message}
}

// ParseError is a path+line annotated error returned to the caller by the
// DIMACS readers; it never aborts the process (spec §7).
type ParseError struct {
	Path    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// NewParseError wraps a parse failure with pkg/errors stack context,
// matching the stack-annotated error style used for API-boundary failures.
func NewParseError(path string, line int, message string) error {
	return errors.WithStack(&ParseError{Path: path, Line: line, Message: message})
}

// Wrap adds a stack trace to an error at a package boundary (file I/O,
// proof-tracer I/O). Internal solver errors never use this: per spec §7,
// "no exceptions cross the public API" — wrapping is reserved for the
// narrow set of errors that are returned, not panicked.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, message)
}
