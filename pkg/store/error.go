package store

import "errors"

// ErrSessionNotFound is returned when a join code does not match any session
var ErrSessionNotFound = errors.New("session not found")
