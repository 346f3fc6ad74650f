package queue

import "errors"

// Sentinel kinds for queue errors.
var (
	ErrClosed = errors.New("report queue closed")
	ErrFull   = errors.New("report queue full")
)
