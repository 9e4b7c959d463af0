package core

import "errors"

var (
	// ErrInvalidSelection is returned when a palette or algorithm name is not registered.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrInvalidDimension reports a width, height or pixel size that could not be used as given.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrBufferSizeMismatch is returned by surfaces when a blit does not match their size.
	ErrBufferSizeMismatch = errors.New("buffer size does not match surface")
	// ErrEmptyBuffer is returned when statistics are requested for an image with no blocks.
	ErrEmptyBuffer = errors.New("empty buffer")
)
