package booking

import (
	"context"

	"github.com/dgrstudio/streampulse-api/internal/audit"
	"github.com/dgrstudio/streampulse-api/internal/domain/studio"
	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/models"
)

type CancelBooking struct {
	repo  studio.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo studio.Repository,
	dispatcher *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: dispatcher,
	}
}

// Execute marca la reserva como cancelada y la conserva como lápida: deja
// de bloquear huecos pero queda visible para el admin y en auditoría.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := studio.Cancel(b); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionBookingCancelled,
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}
