package booking

import (
	"context"
	"testing"

	domain "github.com/careslot/appointment-api/internal/domain/booking"
	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/timezone"
)

func TestGetAvailability(t *testing.T) {
	repo := seededRepo()
	bookOne(t, repo, "2099-01-10", "10:00 AM")
	bookOne(t, repo, "2099-01-10", "02:30 PM")

	uc := NewGetAvailability(repo, nil, timezone.DefaultTimezone)

	free, err := uc.Execute(context.Background(), 1, "2099-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(free) != len(domain.DayTimeLabels())-2 {
		t.Fatalf("expected two slots removed from grid, got %d free", len(free))
	}
	for _, label := range free {
		if label == "10:00 AM" || label == "02:30 PM" {
			t.Fatalf("booked label %s returned as free", label)
		}
	}

	// Another day keeps the full grid.
	full, err := uc.Execute(context.Background(), 1, "2099-01-11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(full) != len(domain.DayTimeLabels()) {
		t.Fatalf("expected full grid, got %d", len(full))
	}
}

func TestGetAvailabilityUnavailableDoctor(t *testing.T) {
	repo := seededRepo()
	uc := NewGetAvailability(repo, nil, timezone.DefaultTimezone)

	free, err := uc.Execute(context.Background(), 2, "2099-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(free) != 0 {
		t.Fatalf("expected no free slots for unavailable doctor, got %d", len(free))
	}
}

func TestGetAvailabilityRejections(t *testing.T) {
	repo := seededRepo()
	uc := NewGetAvailability(repo, nil, timezone.DefaultTimezone)

	cases := []struct {
		name string
		date string
		code string
	}{
		{"malformed date", "2099/01/10", httperr.CodeValidation},
		{"past date", "2020-01-01", httperr.CodeValidation},
	}
	for _, c := range cases {
		if _, err := uc.Execute(context.Background(), 1, c.date); !httperr.IsBusiness(err, c.code) {
			t.Fatalf("%s: expected %s, got %v", c.name, c.code, err)
		}
	}

	if _, err := uc.Execute(context.Background(), 99, "2099-01-10"); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not_found for unknown doctor, got %v", err)
	}
}
