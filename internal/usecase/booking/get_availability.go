package booking

import (
	"context"
	"math"
	"time"

	"github.com/dgrstudio/streampulse-api/internal/domain/studio"
	"github.com/dgrstudio/streampulse-api/internal/httperr"
)

const (
	minDuration = 0.5
	maxDuration = 12
)

type GetAvailability struct {
	repo studio.Repository
}

func NewGetAvailability(repo studio.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
	duration float64,
) ([]studio.Slot, error) {

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if err := validateDuration(duration); err != nil {
		return nil, err
	}

	av, err := uc.repo.GetAvailability(ctx)
	if err != nil {
		return nil, err
	}

	schedule := studio.ResolveSchedule(date, av)
	if !schedule.IsOpen {
		return []studio.Slot{}, nil
	}

	bookings, err := uc.repo.ListBookingsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return studio.GenerateSlots(duration, bookings, schedule), nil
}

func validateDuration(duration float64) error {
	onGrid := math.Mod(duration*2, 1) == 0
	if duration < minDuration || duration > maxDuration || !onGrid {
		return httperr.ErrBusiness("invalid_duration")
	}
	return nil
}
