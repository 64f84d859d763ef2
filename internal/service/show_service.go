// Package service implements the business rules on top of the entity
// store: the show lifecycle state machine, the cheapest-match booking
// engine with its cancellation/refund policy, the auto-start scheduler
// and the facade that wires them together. Multi-step invariants are
// protected by the per-show mutexes handed out by the lock registry;
// every read-validate-write sequence for one show runs under that
// show's mutex, which totally orders it against every other such
// sequence for the same show.
package service

import (
	"time"

	"github.com/ankurkumar14/cinema-ticket-booking-system/internal/model"
	"github.com/ankurkumar14/cinema-ticket-booking-system/internal/repository"
)

// ShowService enforces the show state machine (REGISTERED, STARTED,
// ENDED) and the price mutation rules. Transitions run under the
// show's lock so that manual starts, scheduler-fired starts and
// concurrent bookings serialize through the same critical section and
// at most one of two racing starts can succeed.
type ShowService struct {
	shows *repository.ShowRepo
	locks *repository.LockRegistry
}

// NewShowService constructs a ShowService over the given store and lock
// registry.
func NewShowService(shows *repository.ShowRepo, locks *repository.LockRegistry) *ShowService {
	return &ShowService{shows: shows, locks: locks}
}

// Register creates a new show and returns its identifier. Validation
// of price and capacity happens in the store's create primitive.
func (s *ShowService) Register(cinema, movie string, startTime time.Time, price int64, capacity int) (string, error) {
	return s.shows.Create(cinema, movie, startTime, price, capacity)
}

// Start moves a show from REGISTERED to STARTED. It fails with
// ErrShowAlreadyStarted or ErrShowAlreadyEnded when the show has
// already left REGISTERED, and ErrShowNotFound for an unknown
// identifier. The transition writes the status field only; seats and
// price are untouched.
func (s *ShowService) Start(showID string) error {
	lock := s.locks.Get(showID)
	lock.Lock()
	defer lock.Unlock()

	show, err := s.shows.Get(showID)
	if err != nil {
		return err
	}
	switch show.Status {
	case model.ShowStarted:
		return repository.ErrShowAlreadyStarted
	case model.ShowEnded:
		return repository.ErrShowAlreadyEnded
	}
	return s.shows.SetStatus(showID, model.ShowStarted)
}

// End moves a show from STARTED to its terminal ENDED state. Ending a
// show that never started fails with ErrCannotEndBeforeStart; ending
// twice fails with ErrShowAlreadyEnded.
func (s *ShowService) End(showID string) error {
	lock := s.locks.Get(showID)
	lock.Lock()
	defer lock.Unlock()

	show, err := s.shows.Get(showID)
	if err != nil {
		return err
	}
	switch show.Status {
	case model.ShowRegistered:
		return repository.ErrCannotEndBeforeStart
	case model.ShowEnded:
		return repository.ErrShowAlreadyEnded
	}
	return s.shows.SetStatus(showID, model.ShowEnded)
}

// UpdatePrice overwrites the show's price. Only REGISTERED shows may
// be repriced; once a show has started (or ended) the price is frozen
// and the update fails with ErrShowAlreadyStarted for either state.
// Unit prices captured by existing bookings are never touched.
func (s *ShowService) UpdatePrice(showID string, newPrice int64) error {
	if newPrice <= 0 {
		return repository.ErrInvalidInput
	}
	lock := s.locks.Get(showID)
	lock.Lock()
	defer lock.Unlock()

	show, err := s.shows.Get(showID)
	if err != nil {
		return err
	}
	if show.Status != model.ShowRegistered {
		return repository.ErrShowAlreadyStarted
	}
	return s.shows.SetPrice(showID, newPrice)
}
