package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/ankurkumar14/cinema-ticket-booking-system/internal/model"
)

// BookingRepo owns the booking table and the booking identifier
// counter. Like ShowRepo, every method is atomic and Get returns a
// copy; the order/cancel sequences in the service layer provide the
// cross-record atomicity by holding the owning show's lock.
type BookingRepo struct {
	mu      sync.RWMutex
	byID    map[string]*model.Booking
	counter uint64
}

// NewBookingRepo constructs an empty BookingRepo.
func NewBookingRepo() *BookingRepo {
	return &BookingRepo{byID: make(map[string]*model.Booking)}
}

// Create records a new CONFIRMED booking and returns its generated
// identifier. The unit price is the caller's snapshot of the show
// price at order time.
func (r *BookingRepo) Create(showID string, quantity int, unitPrice int64, now time.Time) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.counter++
	id := fmt.Sprintf("B%05d", r.counter)
	r.byID[id] = &model.Booking{
		ID:        id,
		ShowID:    showID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Status:    model.BookingConfirmed,
		CreatedAt: now,
	}
	return id
}

// Get returns a copy of the booking with the given identifier, or
// ErrBookingNotFound.
func (r *BookingRepo) Get(id string) (model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	return *b, nil
}

// SetStatus overwrites the booking's status. The only transition the
// service layer performs is CONFIRMED to CANCELLED.
func (r *BookingRepo) SetStatus(id string, status model.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return ErrBookingNotFound
	}
	b.Status = status
	return nil
}
