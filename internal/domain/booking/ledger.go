package booking

import "github.com/careslot/appointment-api/internal/httperr"

// Ledger maps a date label to the set of time labels already booked for one
// doctor. A missing date key is an empty set. Reservation is set membership
// over externally-defined labels, not interval math.
type Ledger map[string][]string

func (l Ledger) IsBooked(date, timeLabel string) bool {
	for _, t := range l[date] {
		if t == timeLabel {
			return true
		}
	}
	return false
}

// Reserve returns a ledger with the slot added, failing with slot_conflict
// when it is already taken. Sets for other dates are shared, never mutated.
func (l Ledger) Reserve(date, timeLabel string) (Ledger, error) {
	if l.IsBooked(date, timeLabel) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotConflict)
	}

	next := make(Ledger, len(l)+1)
	for d, times := range l {
		next[d] = times
	}
	next[date] = append(append([]string(nil), l[date]...), timeLabel)
	return next, nil
}

// Release removes the slot if present. Releasing an absent slot is a no-op,
// which keeps cancellation retries idempotent.
func (l Ledger) Release(date, timeLabel string) Ledger {
	times, ok := l[date]
	if !ok {
		return l
	}

	kept := make([]string, 0, len(times))
	for _, t := range times {
		if t != timeLabel {
			kept = append(kept, t)
		}
	}

	next := make(Ledger, len(l))
	for d, ts := range l {
		next[d] = ts
	}
	if len(kept) == 0 {
		delete(next, date)
	} else {
		next[date] = kept
	}
	return next
}
