// Package model defines the in-memory domain records shared between the
// repository and service layers. Records are owned by the repositories;
// services receive copies and mutate state only through repository
// primitives, never by writing to a copy.
package model

import "time"

// ShowStatus enumerates the lifecycle states of a show. A show is
// created REGISTERED, moves to STARTED (manually or via the auto-start
// scheduler) and finally to ENDED, which is terminal.
type ShowStatus string

const (
	ShowRegistered ShowStatus = "REGISTERED" // open for booking and price changes
	ShowStarted    ShowStatus = "STARTED"    // screening in progress; selling frozen
	ShowEnded      ShowStatus = "ENDED"      // terminal; no further transitions
)

// Show represents a scheduled screening of a movie at a cinema. Prices
// are whole currency units (rupees); fractional amounts never occur.
//
// Fields:
//
//	ID             – opaque identifier, assigned monotonically, never reused.
//	Cinema         – venue name; keys the revenue ledger.
//	Movie          – movie title; part of the booking lookup key.
//	StartTime      – scheduled start; part of the booking lookup key and
//	                 the auto-start trigger time.
//	Price          – current price per seat in rupees; always positive.
//	Capacity       – total seats; fixed at registration.
//	SeatsRemaining – unsold seats; always within 0..Capacity.
//	Status         – current lifecycle state.
type Show struct {
	ID             string
	Cinema         string
	Movie          string
	StartTime      time.Time
	Price          int64
	Capacity       int
	SeatsRemaining int
	Status         ShowStatus
}
