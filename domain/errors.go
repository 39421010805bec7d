package domain

import "errors"

var (
	// ErrInvalidFormat will throw if a metadata field violates the marketplace format
	ErrInvalidFormat = errors.New("invalid format")
	// ErrIo will throw if a directory or file cannot be created, read or written
	ErrIo = errors.New("io error")

	ErrUnsupportedMimeType = errors.New("unsupported mime type")
	ErrInvalidDataUri      = errors.New("invalid data uri")
)
