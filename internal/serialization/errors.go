package serialization

import "errors"

// Sentinel errors for container parsing, matched with errors.Is.
var (
	// ErrInvalidMagic is returned when a file does not start with "PREP".
	ErrInvalidMagic = errors.New("serialization: invalid magic bytes")

	// ErrUnsupportedVersion is returned for an unknown format version.
	ErrUnsupportedVersion = errors.New("serialization: unsupported format version")

	// ErrTruncated is returned when the file is shorter than its header
	// or declared payload.
	ErrTruncated = errors.New("serialization: truncated file")

	// ErrUnknownDType is returned for an element kind tag outside the
	// supported set.
	ErrUnknownDType = errors.New("serialization: unknown element kind tag")
)
