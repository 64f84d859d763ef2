// Package cli parses line-oriented commands, dispatches them to the
// CinemaService facade and renders fixed reply strings. It is the only
// layer that knows the textual protocol; the core exposes typed
// operations and sentinel errors.
package cli

// Reply strings. Success replies start with OK, optionally followed by
// a payload; every domain error maps to exactly one ERR_* string.
const (
	ReplyOK             = "OK"
	ReplyUnknownCommand = "UNKNOWN_COMMAND"

	ErrReplyShowNotFound         = "ERR_SHOW_NOT_FOUND"
	ErrReplyBookingNotFound      = "ERR_BOOKING_NOT_FOUND"
	ErrReplyShowAlreadyStarted   = "ERR_SHOW_ALREADY_STARTED"
	ErrReplyShowAlreadyEnded     = "ERR_SHOW_ALREADY_ENDED"
	ErrReplyCannotEndBeforeStart = "ERR_CANNOT_END_BEFORE_START"
	ErrReplyBookingUnavailable   = "ERR_BOOKING_UNAVAILABLE"
	ErrReplyAlreadyCancelled     = "ERR_ALREADY_CANCELLED"
	ErrReplyInvalidInput         = "ERR_INVALID_INPUT"
)
