package matrix

import "errors"

// Package-level sentinel errors. Callers match them with errors.Is; extra
// context (the offending shapes) is attached with fmt.Errorf("...: %w", ...)
// at the point of detection.
var (
	// ErrIncompleteShape is returned when a constructor is invoked without a
	// fully specified row/column count, or when one cannot be derived from
	// the supplied buffer.
	ErrIncompleteShape = errors.New("matrix: incomplete shape")

	// ErrShapeMismatch is returned when two operands required to have equal
	// or compatible extents do not.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrUnsupportedInput is returned when a constructor argument matches
	// none of the recognized input forms.
	ErrUnsupportedInput = errors.New("matrix: unsupported constructor input")

	// ErrKindMismatch is returned when a runtime-tagged buffer is adopted
	// under a generic element type whose tag differs.
	ErrKindMismatch = errors.New("matrix: element kind mismatch")
)
