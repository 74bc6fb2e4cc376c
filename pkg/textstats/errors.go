package textstats

import "errors"

var (
	// ErrFileAccess is returned when the input path is missing or unreadable.
	ErrFileAccess = errors.New("file access error")
	// ErrEmptyInput is returned when there is nothing to analyze.
	ErrEmptyInput = errors.New("empty input")
	// ErrUnknownEncoding is returned for an unrecognised encoding name.
	ErrUnknownEncoding = errors.New("unknown encoding")
)
