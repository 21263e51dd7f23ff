// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing errors that carry enough context to act
// on: the operation that failed, the resource involved, and concrete
// suggestions for fixing the problem.
package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ActionableError is an error with structured context for CLI display.
type ActionableError struct {
	// Operation describes what was being attempted (e.g. "load configuration").
	Operation string

	// Resource identifies the file, source id, or entity involved (optional).
	Resource string

	// Suggestions are hints on how to fix the issue (optional).
	Suggestions []string

	// Cause is the underlying error (optional).
	Cause error
}

// New creates an ActionableError for the given operation.
func New(operation string) *ActionableError {
	return &ActionableError{Operation: operation}
}

// Wrap attaches a cause and returns the error for chaining.
func (e *ActionableError) Wrap(err error) *ActionableError {
	e.Cause = err
	return e
}

// WithResource sets the resource involved and returns the error for chaining.
func (e *ActionableError) WithResource(resource string) *ActionableError {
	e.Resource = resource
	return e
}

// WithSuggestion appends a fix hint and returns the error for chaining.
func (e *ActionableError) WithSuggestion(s string) *ActionableError {
	e.Suggestions = append(e.Suggestions, s)
	return e
}

// Error implements the error interface with a single-line summary.
func (e *ActionableError) Error() string {
	var sb strings.Builder
	sb.WriteString("failed to ")
	sb.WriteString(e.Operation)
	if e.Resource != "" {
		fmt.Fprintf(&sb, " (%s)", e.Resource)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap exposes the cause for errors.Is / errors.As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders the error for terminal display. In verbose mode the full
// cause chain is included; suggestions are always listed.
func (e *ActionableError) Format(verbose bool) string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if verbose && e.Cause != nil {
		for cause := errors.Unwrap(e.Cause); cause != nil; cause = errors.Unwrap(cause) {
			sb.WriteString("\n  caused by: ")
			sb.WriteString(cause.Error())
		}
	}

	for _, s := range e.Suggestions {
		sb.WriteString("\n  hint: ")
		sb.WriteString(s)
	}
	return sb.String()
}
