package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratorError(t *testing.T) {
	t.Run("message includes file when set", func(t *testing.T) {
		err := &GeneratorError{
			Type:    ErrorTypeFileSystem,
			File:    "src/user.ts",
			Message: "failed to read source file",
		}
		assert.Equal(t, "src/user.ts: failed to read source file", err.Error())
	})

	t.Run("message without file", func(t *testing.T) {
		err := &GeneratorError{
			Type:    ErrorTypeValidation,
			Message: "no endpoints found",
		}
		assert.Equal(t, "no endpoints found", err.Error())
	})

	t.Run("unwrap exposes the cause", func(t *testing.T) {
		cause := errors.New("disk full")
		err := &GeneratorError{
			Type:    ErrorTypeFileSystem,
			Message: "failed to write output file",
			Cause:   cause,
		}
		assert.ErrorIs(t, err, cause)
	})
}

func TestDuplicateMethodError(t *testing.T) {
	err := NewDuplicateMethodError("Users", "get", []string{"UserService", "LegacyUserService"})

	expected := "Duplicate method name 'get' found in group 'Users':\n" +
		"- UserService\n" +
		"- LegacyUserService"
	assert.Equal(t, expected, err.Error())
}

func TestSkipReason_String(t *testing.T) {
	assert.Equal(t, "no @backendAPI marker", SkipNoGroupMarker.String())
	assert.Equal(t, "group declared but no class declaration found", SkipNoClassName.String())
	assert.Equal(t, "not skipped", SkipNone.String())
}
