package store

import "errors"

// Sentinel errors returned by the upload storage. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCreatingTempFile is returned when a temporary file cannot be created
	// in the upload directory.
	ErrCreatingTempFile = errors.New("error creating temporary file")

	// ErrWritingTempFile is returned when copying the upload into the
	// temporary file fails, including when the request body is cut short.
	ErrWritingTempFile = errors.New("error writing temporary file")

	// ErrReadingTempFile is returned when a saved upload cannot be read back.
	ErrReadingTempFile = errors.New("error reading temporary file")

	// ErrTempFileRemoved is returned when reading a file that was already
	// removed by its owner.
	ErrTempFileRemoved = errors.New("temporary file was removed")
)
