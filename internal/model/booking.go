package model

import "time"

// BookingStatus enumerates the states of a booking. CONFIRMED is the
// only creation state; the single transition is to CANCELLED, which is
// irreversible.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking records a confirmed (or later cancelled) reservation of a
// quantity of seats against exactly one show.
//
// Fields:
//
//	ID        – opaque identifier, assigned monotonically, never reused.
//	ShowID    – show the seats were booked against.
//	Quantity  – number of seats; fixed for the life of the booking.
//	UnitPrice – price per seat captured at booking time. Later price
//	            updates on the show never change this snapshot; refunds
//	            are computed from it.
//	Status    – CONFIRMED or CANCELLED.
//	CreatedAt – caller-supplied time of the order.
type Booking struct {
	ID        string
	ShowID    string
	Quantity  int
	UnitPrice int64
	Status    BookingStatus
	CreatedAt time.Time
}
