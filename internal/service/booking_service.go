package service

import (
	"sort"
	"time"

	"github.com/ankurkumar14/cinema-ticket-booking-system/internal/model"
	"github.com/ankurkumar14/cinema-ticket-booking-system/internal/repository"
)

// BookingService implements the order and cancellation paths. It is
// the only component that mutates seat counts and revenue, and it does
// so exclusively while holding the owning show's lock.
type BookingService struct {
	shows    *repository.ShowRepo
	bookings *repository.BookingRepo
	revenue  *repository.RevenueRepo
	locks    *repository.LockRegistry
}

// NewBookingService constructs a BookingService over the shared store
// and lock registry.
func NewBookingService(shows *repository.ShowRepo, bookings *repository.BookingRepo, revenue *repository.RevenueRepo, locks *repository.LockRegistry) *BookingService {
	return &BookingService{shows: shows, bookings: bookings, revenue: revenue, locks: locks}
}

// Order books qty seats for the cheapest open show registered under the
// exact (movie, startTime) key and returns the new booking identifier
// together with the chosen show identifier.
//
// Selection runs in two phases. The first phase scans a snapshot of
// the matching shows without holding any lock: shows that are no longer
// REGISTERED or lack the seats are rejected (remembering whether any
// rejected match had started), the cheapest survivor wins, and ties
// break on ascending identifier, which equals registration order. The
// second phase acquires the winner's lock and re-validates status and
// seats, because both may have changed between the unlocked scan and
// the lock acquisition. Only then do the three mutations happen, as a
// unit under the lock: seats decrease by qty, a CONFIRMED booking is
// created capturing the show's current price, and the cinema's ledger
// is credited price times qty. Scanning without a lock keeps candidate
// selection from serializing every order for a key on one mutex, while
// the re-validation keeps the mutating decision race-free.
func (s *BookingService) Order(movie string, startTime time.Time, qty int, now time.Time) (bookingID, showID string, err error) {
	if qty <= 0 {
		return "", "", repository.ErrInvalidInput
	}

	matches := s.shows.ListByKey(movie, startTime)
	if len(matches) == 0 {
		return "", "", repository.ErrBookingUnavailable
	}

	candidates := make([]model.Show, 0, len(matches))
	anyStarted := false
	for _, m := range matches {
		if m.Status != model.ShowRegistered {
			if m.Status == model.ShowStarted {
				anyStarted = true
			}
			continue
		}
		if m.SeatsRemaining >= qty {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		// A started sibling takes precedence over capacity
		// exhaustion as the reported reason.
		if anyStarted {
			return "", "", repository.ErrShowAlreadyStarted
		}
		return "", "", repository.ErrBookingUnavailable
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Price != candidates[j].Price {
			return candidates[i].Price < candidates[j].Price
		}
		return candidates[i].ID < candidates[j].ID
	})
	chosen := candidates[0]

	lock := s.locks.Get(chosen.ID)
	lock.Lock()
	defer lock.Unlock()

	// Re-validate under the lock; the snapshot above is advisory only.
	show, err := s.shows.Get(chosen.ID)
	if err != nil {
		return "", "", err
	}
	if show.Status != model.ShowRegistered {
		return "", "", repository.ErrShowAlreadyStarted
	}
	if show.SeatsRemaining < qty {
		return "", "", repository.ErrBookingUnavailable
	}

	if err := s.shows.AdjustSeats(show.ID, -qty); err != nil {
		return "", "", err
	}
	bookingID = s.bookings.Create(show.ID, qty, show.Price, now)
	s.revenue.Add(show.Cinema, show.Price*int64(qty))
	return bookingID, show.ID, nil
}

// Cancel cancels the whole booking and returns the refund in rupees.
// The refund depends on the owning show's status at cancellation time,
// not at booking time: while the show is still REGISTERED the refund is
// half the amount paid (floor division), the seats return to the pool
// and the cinema's ledger is debited; once the show has started or
// ended the refund is zero and seats and ledger stay untouched. The
// booking is marked CANCELLED in every successful branch.
func (s *BookingService) Cancel(bookingID string, now time.Time) (int64, error) {
	booking, err := s.bookings.Get(bookingID)
	if err != nil {
		return 0, err
	}
	// Fast path; the authoritative check repeats under the lock.
	if booking.Status == model.BookingCancelled {
		return 0, repository.ErrAlreadyCancelled
	}

	lock := s.locks.Get(booking.ShowID)
	lock.Lock()
	defer lock.Unlock()

	booking, err = s.bookings.Get(bookingID)
	if err != nil {
		return 0, err
	}
	if booking.Status == model.BookingCancelled {
		return 0, repository.ErrAlreadyCancelled
	}
	show, err := s.shows.Get(booking.ShowID)
	if err != nil {
		return 0, err
	}

	var refund int64
	if show.Status == model.ShowRegistered {
		refund = booking.UnitPrice * int64(booking.Quantity) / 2
		if err := s.shows.AdjustSeats(show.ID, booking.Quantity); err != nil {
			return 0, err
		}
		s.revenue.Add(show.Cinema, -refund)
	}

	if err := s.bookings.SetStatus(bookingID, model.BookingCancelled); err != nil {
		return 0, err
	}
	return refund, nil
}
