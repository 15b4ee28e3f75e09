package testbed

import "errors"

// Returned when a command exceeds its execution deadline.
var ErrTimeout = errors.New("command timed out")
