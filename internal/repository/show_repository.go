package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/ankurkumar14/cinema-ticket-booking-system/internal/model"
)

// showKey is the secondary index key. Matching is exact: no title
// normalization, no case folding, no timestamp tolerance. The start
// time is reduced to UnixNano so that two time.Time values naming the
// same instant compare equal regardless of location or monotonic
// reading.
type showKey struct {
	movie string
	start int64
}

func newShowKey(movie string, startTime time.Time) showKey {
	return showKey{movie: movie, start: startTime.UnixNano()}
}

// ShowRepo owns the show table, the (movie, start time) index and the
// show identifier counter. All methods are atomic with respect to each
// other; Get and ListByKey return copies, so a caller can never mutate
// stored state through a returned value. Field updates go through the
// targeted primitives (SetStatus, SetPrice, AdjustSeats) so that a
// status write can never clobber a concurrent seat adjustment.
type ShowRepo struct {
	mu      sync.RWMutex
	byID    map[string]*model.Show
	byKey   map[showKey][]string // show IDs in creation order
	counter uint64
}

// NewShowRepo constructs an empty ShowRepo.
func NewShowRepo() *ShowRepo {
	return &ShowRepo{
		byID:  make(map[string]*model.Show),
		byKey: make(map[showKey][]string),
	}
}

// Create registers a new show and returns its generated identifier.
// Identifier assignment, table insert and index append happen inside a
// single critical section, so identifiers are monotonic and the index
// order equals registration order. Registration is low-frequency
// relative to booking traffic, so one global critical section here does
// not bottleneck orders. Fails with ErrInvalidInput when price or
// capacity is not positive.
func (r *ShowRepo) Create(cinema, movie string, startTime time.Time, price int64, capacity int) (string, error) {
	if price <= 0 || capacity <= 0 {
		return "", ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	id := fmt.Sprintf("S%05d", r.counter)
	r.byID[id] = &model.Show{
		ID:             id,
		Cinema:         cinema,
		Movie:          movie,
		StartTime:      startTime,
		Price:          price,
		Capacity:       capacity,
		SeatsRemaining: capacity,
		Status:         model.ShowRegistered,
	}
	key := newShowKey(movie, startTime)
	r.byKey[key] = append(r.byKey[key], id)
	return id, nil
}

// Get returns a copy of the show with the given identifier, or
// ErrShowNotFound.
func (r *ShowRepo) Get(id string) (model.Show, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return model.Show{}, ErrShowNotFound
	}
	return *s, nil
}

// ListByKey returns copies of all shows registered under the exact
// (movie, start time) key, in registration order. The result is a
// point-in-time snapshot: callers that act on it must re-validate
// under the chosen show's lock before mutating anything.
func (r *ShowRepo) ListByKey(movie string, startTime time.Time) []model.Show {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byKey[newShowKey(movie, startTime)]
	shows := make([]model.Show, 0, len(ids))
	for _, id := range ids {
		shows = append(shows, *r.byID[id])
	}
	return shows
}

// SetStatus overwrites the show's lifecycle status. It is a single
// atomic field write; legality of the transition is the service
// layer's responsibility.
func (r *ShowRepo) SetStatus(id string, status model.ShowStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return ErrShowNotFound
	}
	s.Status = status
	return nil
}

// SetPrice overwrites the show's current price. Existing bookings keep
// the unit price captured when they were created.
func (r *ShowRepo) SetPrice(id string, price int64) error {
	if price <= 0 {
		return ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return ErrShowNotFound
	}
	s.Price = price
	return nil
}

// AdjustSeats adds delta (negative for a sale, positive for a
// restoration) to the show's remaining seats. The result must stay
// within 0..Capacity; a delta that would leave the range fails with
// ErrInvalidInput and writes nothing. Callers hold the show's lock and
// have already validated availability, so a range failure here means a
// caller bug rather than a lost race.
func (r *ShowRepo) AdjustSeats(id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byID[id]
	if !ok {
		return ErrShowNotFound
	}
	next := s.SeatsRemaining + delta
	if next < 0 || next > s.Capacity {
		return ErrInvalidInput
	}
	s.SeatsRemaining = next
	return nil
}
