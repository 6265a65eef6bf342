package repository

import "errors"

// ErrNotFound signals that no task matches the requested id. It is a normal
// return value, not a fault: handlers map it to 404.
var ErrNotFound = errors.New("task not found")
