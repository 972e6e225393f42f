package core

import "errors"

// ErrInvalidInput marks a process set that can not be scheduled. Callers should ask for new input
// rather than retry.
var ErrInvalidInput = errors.New("invalid input")
