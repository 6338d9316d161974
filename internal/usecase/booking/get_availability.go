package booking

import (
	"context"

	"github.com/careslot/appointment-api/internal/cache"
	domain "github.com/careslot/appointment-api/internal/domain/booking"
	"github.com/careslot/appointment-api/internal/httperr"
	"github.com/careslot/appointment-api/internal/timezone"
)

type GetAvailability struct {
	repo   domain.Repository
	slots  *cache.SlotCache
	clinic string
}

func NewGetAvailability(
	repo domain.Repository,
	slots *cache.SlotCache,
	clinicTimezone string,
) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		slots:  slots,
		clinic: clinicTimezone,
	}
}

// Execute returns the free time labels for a doctor on a date: the fixed
// clinic grid minus the ledger. An unavailable doctor simply has no free
// slots.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	doctorID uint,
	date string,
) ([]string, error) {

	if !domain.IsValidDateLabel(date) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	if date < timezone.Today(uc.clinic) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	doctor, err := uc.repo.GetDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	if !doctor.Available {
		return []string{}, nil
	}

	times, hit := uc.slots.GetBookedTimes(ctx, doctorID, date)
	if !hit {
		times, err = uc.repo.BookedTimes(ctx, doctorID, date)
		if err != nil {
			return nil, err
		}
		uc.slots.SetBookedTimes(ctx, doctorID, date, times)
	}

	ledger := domain.Ledger{date: times}
	return domain.FreeTimes(ledger, date), nil
}
