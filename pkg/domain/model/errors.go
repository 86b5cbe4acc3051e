package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrToolNotFound is returned when the archive tool cannot be located
	ErrToolNotFound = goerr.New("archive tool not found")

	// ErrExtractionFailed is returned when listing or extracting entries of a file fails
	ErrExtractionFailed = goerr.New("extraction failed")

	// ErrNoInput is returned when no input path is given
	ErrNoInput = goerr.New("no input path given")

	// ErrInvalidConfig is returned for an unreadable or malformed configuration
	ErrInvalidConfig = goerr.New("invalid configuration")
)
