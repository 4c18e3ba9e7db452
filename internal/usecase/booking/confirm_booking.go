package booking

import (
	"context"

	"github.com/dgrstudio/streampulse-api/internal/audit"
	"github.com/dgrstudio/streampulse-api/internal/domain/studio"
	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/models"
)

type ConfirmBooking struct {
	repo  studio.Repository
	audit *audit.Dispatcher
}

func NewConfirmBooking(
	repo studio.Repository,
	dispatcher *audit.Dispatcher,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:  repo,
		audit: dispatcher,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	bookingID string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := studio.Confirm(b); err != nil {
		return nil, err
	}

	// Confirmar una compra de bono es el único camino que acuña saldo.
	var minted *models.HourBono
	if b.IsBonoPurchase() {
		bono := studio.MintBono(b)
		minted = &bono
	}

	if err := uc.repo.ConfirmBooking(ctx, b, minted); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionBookingConfirmed,
		Entity:   "booking",
		EntityID: b.ID,
	})

	if minted != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionBonoMinted,
			Entity:   "hour_bono",
			EntityID: minted.ID,
			Metadata: map[string]any{"hours": minted.TotalHours, "booking": b.ID},
		})
	}

	return b, nil
}
