package config

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidScreen is returned when the window size or frame rate is not
	// positive.
	ErrInvalidScreen = errors.New("invalid screen size")

	// ErrInvalidLayout is returned for a non-positive row height or radius.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrInvalidRate is returned when an animation rate is out of range.
	ErrInvalidRate = errors.New("invalid animation rate")

	ErrUnknownPreset = errors.New("unknown preset")
)
