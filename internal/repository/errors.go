// Package repository implements the in-memory entity store: show and
// booking tables, the (movie, start time) secondary index, the
// per-cinema revenue ledger and the per-show lock registry. Every
// exported method is individually atomic; multi-step business
// invariants are enforced by the service layer holding the relevant
// show's lock across its read-validate-write sequence.
//
// This file defines the sentinel errors shared across the whole
// application. Higher layers match them with errors.Is and translate
// them into CLI reply strings; they are the complete failure taxonomy,
// and no core operation fails with anything outside it.
package repository

import "errors"

// ErrShowNotFound is returned when a referenced show identifier does
// not exist in the store.
var ErrShowNotFound = errors.New("show not found")

// ErrBookingNotFound is returned when a referenced booking identifier
// does not exist in the store.
var ErrBookingNotFound = errors.New("booking not found")

// ErrShowAlreadyStarted indicates an operation (booking, price update,
// start) that is invalid because the show has left the REGISTERED state.
var ErrShowAlreadyStarted = errors.New("show already started")

// ErrShowAlreadyEnded indicates a start or end requested on a show that
// is already in its terminal state.
var ErrShowAlreadyEnded = errors.New("show already ended")

// ErrCannotEndBeforeStart indicates an end requested on a show that has
// not been started yet.
var ErrCannotEndBeforeStart = errors.New("cannot end before start")

// ErrBookingUnavailable indicates that no matching open show has
// sufficient remaining capacity. A lookup key with no shows at all
// reports the same error; exact-match semantics offer no fuzzy
// fallback to distinguish the two.
var ErrBookingUnavailable = errors.New("booking unavailable")

// ErrAlreadyCancelled indicates a cancellation requested on a booking
// that has already been cancelled.
var ErrAlreadyCancelled = errors.New("booking already cancelled")

// ErrInvalidInput indicates a non-positive price, capacity or quantity,
// or a malformed command shape at the CLI boundary.
var ErrInvalidInput = errors.New("invalid input")
