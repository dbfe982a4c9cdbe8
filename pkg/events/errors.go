package events

import "errors"

var ErrPublisherClosed = errors.New("event publisher is closed")
