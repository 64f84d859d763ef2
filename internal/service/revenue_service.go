package service

import "github.com/ankurkumar14/cinema-ticket-booking-system/internal/repository"

// RevenueService exposes the per-cinema revenue ledger for reporting.
type RevenueService struct {
	revenue *repository.RevenueRepo
}

// NewRevenueService constructs a RevenueService over the shared ledger.
func NewRevenueService(revenue *repository.RevenueRepo) *RevenueService {
	return &RevenueService{revenue: revenue}
}

// For returns the running total for one cinema, zero if unknown.
func (s *RevenueService) For(cinema string) int64 {
	return s.revenue.For(cinema)
}

// All returns a copy of the running totals for every cinema that has
// taken revenue.
func (s *RevenueService) All() map[string]int64 {
	return s.revenue.All()
}
