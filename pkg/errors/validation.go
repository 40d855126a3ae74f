package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxIdentifierLength bounds shape and marker identifiers. They end up as
// markup ids, so they are kept short and free of markup-significant characters.
const maxIdentifierLength = 128

// identifierRegex matches identifiers usable as element and marker ids.
var identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// ValidateIdentifier validates a shape or marker identifier from a scene file.
//
// Validation rules:
//   - No empty identifiers
//   - Maximum length of 128 characters
//   - Must start with a letter or underscore
//   - Only letters, digits, '_', '-' and '.' afterwards
func ValidateIdentifier(id string) error {
	if id == "" {
		return New(ErrCodeInvalidScene, "identifier cannot be empty")
	}

	if len(id) > maxIdentifierLength {
		return New(ErrCodeInvalidScene, "identifier too long (max %d characters)", maxIdentifierLength)
	}

	if !identifierRegex.MatchString(id) {
		return New(ErrCodeInvalidScene, "invalid identifier: %q", id)
	}

	return nil
}

// ValidatePath validates a scene file path for safety.
// It prevents path traversal when paths arrive from untrusted callers.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
