package repository

import "sync"

// RevenueRepo keeps a signed running revenue total per cinema. Orders
// credit it and pre-start cancellations debit it; both happen while the
// caller holds the relevant show's lock, so per-cinema totals caused by
// one show's activity are totally ordered with that show's bookings.
type RevenueRepo struct {
	mu       sync.RWMutex
	byCinema map[string]int64
}

// NewRevenueRepo constructs an empty RevenueRepo.
func NewRevenueRepo() *RevenueRepo {
	return &RevenueRepo{byCinema: make(map[string]int64)}
}

// Add applies a signed delta (rupees) to the cinema's running total,
// creating the ledger entry on first use.
func (r *RevenueRepo) Add(cinema string, amount int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byCinema[cinema] += amount
}

// For returns the running total for one cinema; zero when the cinema
// has never taken revenue.
func (r *RevenueRepo) For(cinema string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byCinema[cinema]
}

// All returns a copy of the whole ledger keyed by cinema name.
func (r *RevenueRepo) All() map[string]int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int64, len(r.byCinema))
	for cinema, total := range r.byCinema {
		out[cinema] = total
	}
	return out
}
