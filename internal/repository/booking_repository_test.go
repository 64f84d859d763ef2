package repository

import (
	"errors"
	"testing"

	"github.com/ankurkumar14/cinema-ticket-booking-system/internal/model"
)

func TestBookingCreateAndGet(t *testing.T) {
	r := NewBookingRepo()
	now := dt(t, "2025-08-20 09:00")

	id := r.Create("S00001", 4, 300, now)
	if id != "B00001" {
		t.Errorf("first id = %q, want B00001", id)
	}
	if id2 := r.Create("S00001", 1, 300, now); id2 != "B00002" {
		t.Errorf("second id = %q, want B00002", id2)
	}

	b, err := r.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if b.ShowID != "S00001" || b.Quantity != 4 || b.UnitPrice != 300 ||
		b.Status != model.BookingConfirmed || !b.CreatedAt.Equal(now) {
		t.Errorf("booking = %+v", b)
	}
}

func TestBookingGetUnknown(t *testing.T) {
	r := NewBookingRepo()
	if _, err := r.Get("B00042"); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("err = %v, want ErrBookingNotFound", err)
	}
}

func TestBookingSetStatus(t *testing.T) {
	r := NewBookingRepo()
	id := r.Create("S00001", 2, 150, dt(t, "2025-08-20 09:00"))

	if err := r.SetStatus(id, model.BookingCancelled); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	b, _ := r.Get(id)
	if b.Status != model.BookingCancelled {
		t.Errorf("status = %q, want CANCELLED", b.Status)
	}
	if err := r.SetStatus("B09999", model.BookingCancelled); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("unknown id: err = %v, want ErrBookingNotFound", err)
	}
}

func TestBookingUnitPriceIsSnapshot(t *testing.T) {
	shows := NewShowRepo()
	bookings := NewBookingRepo()
	showID, _ := shows.Create("PVR", "Avengers", dt(t, "2025-08-21 10:00"), 300, 10)

	bid := bookings.Create(showID, 2, 300, dt(t, "2025-08-20 09:00"))
	if err := shows.SetPrice(showID, 500); err != nil {
		t.Fatalf("SetPrice: %v", err)
	}

	b, _ := bookings.Get(bid)
	if b.UnitPrice != 300 {
		t.Errorf("captured unit price = %d, want 300 after show repricing", b.UnitPrice)
	}
}

func TestRevenueLedger(t *testing.T) {
	r := NewRevenueRepo()

	if got := r.For("PVR"); got != 0 {
		t.Errorf("unknown cinema total = %d, want 0", got)
	}
	r.Add("PVR", 1500)
	r.Add("PVR", -600)
	r.Add("Grand", 1250)

	if got := r.For("PVR"); got != 900 {
		t.Errorf("PVR total = %d, want 900", got)
	}
	all := r.All()
	if len(all) != 2 || all["PVR"] != 900 || all["Grand"] != 1250 {
		t.Errorf("All() = %v", all)
	}

	// The returned map is a copy.
	all["PVR"] = 0
	if got := r.For("PVR"); got != 900 {
		t.Errorf("ledger mutated through All() copy: %d", got)
	}
}
