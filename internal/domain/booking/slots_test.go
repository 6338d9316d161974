package booking

import (
	"reflect"
	"testing"
)

func TestDayTimeLabels(t *testing.T) {
	labels := DayTimeLabels()

	if len(labels) != 22 {
		t.Fatalf("expected 22 half-hour labels, got %d", len(labels))
	}
	if labels[0] != "10:00 AM" {
		t.Fatalf("expected first label 10:00 AM, got %s", labels[0])
	}
	if labels[len(labels)-1] != "08:30 PM" {
		t.Fatalf("expected last label 08:30 PM, got %s", labels[len(labels)-1])
	}
}

func TestIsValidTimeLabel(t *testing.T) {
	cases := []struct {
		label string
		valid bool
	}{
		{"10:00 AM", true},
		{"08:30 PM", true},
		{"12:00 PM", true},
		{"09:30 AM", false}, // before opening
		{"09:00 PM", false}, // at close
		{"10:15 AM", false}, // off-grid
		{"10:00", false},
		{"25:00 AM", false},
		{"", false},
	}

	for _, c := range cases {
		if got := IsValidTimeLabel(c.label); got != c.valid {
			t.Fatalf("label %q: expected %v, got %v", c.label, c.valid, got)
		}
	}
}

func TestIsValidDateLabel(t *testing.T) {
	cases := []struct {
		label string
		valid bool
	}{
		{"2024-01-10", true},
		{"2024-1-10", false},
		{"10-01-2024", false},
		{"2024-13-01", false},
		{"", false},
	}

	for _, c := range cases {
		if got := IsValidDateLabel(c.label); got != c.valid {
			t.Fatalf("label %q: expected %v, got %v", c.label, c.valid, got)
		}
	}
}

func TestFreeTimes(t *testing.T) {
	ledger := Ledger{"2024-01-10": {"10:00 AM", "08:30 PM"}}

	free := FreeTimes(ledger, "2024-01-10")

	if len(free) != 20 {
		t.Fatalf("expected 20 free slots, got %d", len(free))
	}
	for _, label := range free {
		if label == "10:00 AM" || label == "08:30 PM" {
			t.Fatalf("booked label %s returned as free", label)
		}
	}

	if got := FreeTimes(ledger, "2024-01-11"); !reflect.DeepEqual(got, DayTimeLabels()) {
		t.Fatal("expected full grid for an empty date")
	}
}
