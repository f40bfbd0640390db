package models

import (
	"fmt"
	"strings"
)

// GeneratorError represents an error that occurred during a generation pass
type GeneratorError struct {
	Type    ErrorType // type of error
	File    string    // file where error occurred
	Message string    // error message
	Cause   error     // underlying error cause
}

// Error implements the error interface
func (e *GeneratorError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error cause
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// DuplicateMethodError reports a second definition of the same (group, method)
// pair. Sources holds every class name that attempted the definition, in
// discovery order, including the offending one.
type DuplicateMethodError struct {
	Group   string
	Method  string
	Sources []string
}

// Error implements the error interface
func (e *DuplicateMethodError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Duplicate method name '%s' found in group '%s':", e.Method, e.Group)
	for _, source := range e.Sources {
		fmt.Fprintf(&b, "\n- %s", source)
	}
	return b.String()
}

// NewDuplicateMethodError builds the validation error for a duplicate
// (group, method) definition from its full provenance list
func NewDuplicateMethodError(group, method string, sources []string) *DuplicateMethodError {
	return &DuplicateMethodError{
		Group:   group,
		Method:  method,
		Sources: sources,
	}
}
