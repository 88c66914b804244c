package events

import "errors"

// ErrClosed is returned when publishing to or listening on a closed broker
var ErrClosed = errors.New("event broker closed")
