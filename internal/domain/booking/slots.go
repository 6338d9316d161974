package booking

import (
	"time"

	"github.com/careslot/appointment-api/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	timeLayout = "03:04 PM"

	clinicOpenMinute  = 10 * 60 // 10:00 AM
	clinicCloseMinute = 21 * 60 // 09:00 PM
	slotStepMinutes   = 30
)

// DayTimeLabels returns the fixed half-hour clinic grid, "10:00 AM" through
// "08:30 PM". Every bookable slot carries one of these labels.
func DayTimeLabels() []string {
	labels := make([]string, 0, (clinicCloseMinute-clinicOpenMinute)/slotStepMinutes)
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	for m := clinicOpenMinute; m < clinicCloseMinute; m += slotStepMinutes {
		labels = append(labels, base.Add(time.Duration(m)*time.Minute).Format(timeLayout))
	}
	return labels
}

func IsValidTimeLabel(label string) bool {
	t, err := time.Parse(timeLayout, label)
	if err != nil || t.Format(timeLayout) != label {
		return false
	}
	minute := t.Hour()*60 + t.Minute()
	if minute < clinicOpenMinute || minute >= clinicCloseMinute {
		return false
	}
	return minute%slotStepMinutes == 0
}

func IsValidDateLabel(label string) bool {
	t, err := time.Parse(DateLayout, label)
	return err == nil && t.Format(DateLayout) == label
}

// ValidateSlot checks both labels of a requested slot.
func ValidateSlot(date, timeLabel string) error {
	if !IsValidDateLabel(date) || !IsValidTimeLabel(timeLabel) {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}
	return nil
}

// FreeTimes returns the clinic grid minus the ledger entries for a date,
// in grid order.
func FreeTimes(l Ledger, date string) []string {
	free := make([]string, 0)
	for _, label := range DayTimeLabels() {
		if !l.IsBooked(date, label) {
			free = append(free, label)
		}
	}
	return free
}
