package wizard

import "errors"

// ErrSessionNotFound is returned when a session has expired or never existed.
var ErrSessionNotFound = errors.New("booking session not found or expired")
