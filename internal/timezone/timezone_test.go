package timezone

import "testing"

func TestLocationNeverNil(t *testing.T) {
	cases := []string{"", "Not/AZone", DefaultTimezone, "UTC"}

	for _, tz := range cases {
		if Location(tz) == nil {
			t.Fatalf("Location(%q) returned nil", tz)
		}
	}
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		tz    string
		valid bool
	}{
		{DefaultTimezone, true},
		{"UTC", true},
		{"Not/AZone", false},
		{"", false},
	}

	for _, c := range cases {
		if got := IsValid(c.tz); got != c.valid {
			t.Fatalf("IsValid(%q): expected %v, got %v", c.tz, c.valid, got)
		}
	}
}

func TestTodayShape(t *testing.T) {
	today := Today(DefaultTimezone)
	if len(today) != 10 || today[4] != '-' || today[7] != '-' {
		t.Fatalf("expected YYYY-MM-DD date label, got %q", today)
	}
}
