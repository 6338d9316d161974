package booking

import (
	"context"
	"testing"

	"github.com/careslot/appointment-api/internal/httperr"
)

func TestListAppointmentsForPatient(t *testing.T) {
	repo := seededRepo()
	bookOne(t, repo, "2099-01-10", "10:00 AM")
	bookOne(t, repo, "2099-01-11", "10:00 AM")

	uc := NewListAppointments(repo)

	items, err := uc.ForPatient(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(items))
	}
	for _, item := range items {
		if item.DoctorName != "Dr. Meera Nair" || item.PatientName != "Asha Verma" {
			t.Fatalf("expected snapshot names on the listing, got %+v", item)
		}
	}

	empty, err := uc.ForPatient(context.Background(), 77)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no appointments, got %d", len(empty))
	}
}

func TestListAppointmentsForDoctor(t *testing.T) {
	repo := seededRepo()
	bookOne(t, repo, "2099-01-10", "10:00 AM")
	bookOne(t, repo, "2099-01-11", "10:00 AM")

	uc := NewListAppointments(repo)

	all, err := uc.ForDoctor(context.Background(), 1, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(all))
	}

	day, err := uc.ForDoctor(context.Background(), 1, "2099-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(day) != 1 || day[0].SlotDate != "2099-01-10" {
		t.Fatalf("expected one appointment on the filtered date, got %+v", day)
	}

	if _, err := uc.ForDoctor(context.Background(), 1, "not-a-date"); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation_error, got %v", err)
	}
}
