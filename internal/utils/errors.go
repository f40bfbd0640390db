package utils

import "fmt"

// ErrorWrappers provides common error wrapping patterns used throughout the codebase
// to reduce duplication and ensure consistent error formatting.

// WrapGenerateError wraps an error with a "failed to generate" message
func WrapGenerateError(item string, err error) error {
	return fmt.Errorf("failed to generate %s: %w", item, err)
}

// WrapWatchError wraps an error with a "failed to watch" message
func WrapWatchError(item string, err error) error {
	return fmt.Errorf("failed to watch %s: %w", item, err)
}
