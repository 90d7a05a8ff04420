package apperr

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrNotDirectory    = errors.New("not a directory")
	ErrPathEscapesRoot = errors.New("path escapes content root")
)

// ErrValidationFailed is returned when a lint run recorded at least one error.
var ErrValidationFailed = errors.New("content validation failed")
