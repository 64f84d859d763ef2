package service

import (
	"time"

	"github.com/ankurkumar14/cinema-ticket-booking-system/internal/repository"
)

// CinemaService is the facade external callers use. It owns the store,
// the lock registry, the individual services and the auto-start
// scheduler, and is the single place where registration is tied to
// timer arming and manual start to timer cancellation.
type CinemaService struct {
	shows     *ShowService
	booking   *BookingService
	revenue   *RevenueService
	scheduler *Scheduler
	autoStart bool
}

// CinemaServiceOption customizes a CinemaService at construction time.
type CinemaServiceOption func(*CinemaService)

// WithAutoStart enables or disables scheduler-driven auto-start of
// registered shows. It is enabled by default; disabling it leaves every
// show REGISTERED until started manually.
func WithAutoStart(enabled bool) CinemaServiceOption {
	return func(s *CinemaService) { s.autoStart = enabled }
}

// NewCinemaService wires a fresh in-memory store, lock registry,
// services and scheduler together. Every returned facade is fully
// independent; all state is lost when the process exits.
func NewCinemaService(opts ...CinemaServiceOption) *CinemaService {
	showRepo := repository.NewShowRepo()
	bookingRepo := repository.NewBookingRepo()
	revenueRepo := repository.NewRevenueRepo()
	locks := repository.NewLockRegistry()

	shows := NewShowService(showRepo, locks)
	svc := &CinemaService{
		shows:     shows,
		booking:   NewBookingService(showRepo, bookingRepo, revenueRepo, locks),
		revenue:   NewRevenueService(revenueRepo),
		scheduler: NewScheduler(shows.Start),
		autoStart: true,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// RegisterShow creates a show and, when auto-start is enabled, arms its
// auto-start timer. Returns the new show identifier.
func (s *CinemaService) RegisterShow(cinema, movie string, startTime time.Time, price int64, capacity int) (string, error) {
	showID, err := s.shows.Register(cinema, movie, startTime, price, capacity)
	if err != nil {
		return "", err
	}
	if s.autoStart {
		s.scheduler.ScheduleStart(showID, startTime)
	}
	return showID, nil
}

// StartShow starts a show manually. Any pending auto-start timer is
// cancelled first so the manual start wins a race against a timer that
// has not fired; if the timer fired already, the start below reports
// ErrShowAlreadyStarted.
func (s *CinemaService) StartShow(showID string) error {
	s.scheduler.Cancel(showID)
	return s.shows.Start(showID)
}

// EndShow ends a started show.
func (s *CinemaService) EndShow(showID string) error {
	return s.shows.End(showID)
}

// UpdatePrice changes the price of a still-REGISTERED show.
func (s *CinemaService) UpdatePrice(showID string, newPrice int64) error {
	return s.shows.UpdatePrice(showID, newPrice)
}

// OrderTickets books qty seats for the cheapest matching open show.
func (s *CinemaService) OrderTickets(movie string, startTime time.Time, qty int, now time.Time) (bookingID, showID string, err error) {
	return s.booking.Order(movie, startTime, qty, now)
}

// CancelBooking cancels a booking and returns the refund amount.
func (s *CinemaService) CancelBooking(bookingID string, now time.Time) (int64, error) {
	return s.booking.Cancel(bookingID, now)
}

// RevenueFor reports the running revenue total for one cinema.
func (s *CinemaService) RevenueFor(cinema string) int64 {
	return s.revenue.For(cinema)
}

// AllRevenue reports the running totals for every cinema.
func (s *CinemaService) AllRevenue() map[string]int64 {
	return s.revenue.All()
}
