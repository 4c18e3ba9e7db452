package booking

import (
	"context"

	"github.com/dgrstudio/streampulse-api/internal/domain/studio"
	"github.com/dgrstudio/streampulse-api/internal/httperr"
	"github.com/dgrstudio/streampulse-api/internal/models"
	"github.com/dgrstudio/streampulse-api/internal/payments"
)

// CompleteCardPayment resuelve el retorno de la pasarela. Solo con el
// indicador de éxito se ensambla la reserva (ya confirmada); en cualquier
// otro caso se descarta el borrador y no se crea nada.
type CompleteCardPayment struct {
	create *CreateBooking
	drafts *payments.DraftStore
}

func NewCompleteCardPayment(
	create *CreateBooking,
	drafts *payments.DraftStore,
) *CompleteCardPayment {
	return &CompleteCardPayment{
		create: create,
		drafts: drafts,
	}
}

func (uc *CompleteCardPayment) Execute(
	ctx context.Context,
	ref string,
	approved bool,
) (*models.Booking, error) {

	var in CreateBookingInput
	if err := uc.drafts.Load(ctx, ref, &in); err != nil {
		if err == payments.ErrDraftNotFound {
			return nil, httperr.ErrBusiness("payment_draft_not_found")
		}
		return nil, err
	}

	// El borrador no sobrevive al retorno, con o sin éxito.
	if err := uc.drafts.Delete(ctx, ref); err != nil {
		return nil, err
	}

	if !approved {
		return nil, httperr.ErrBusiness("payment_not_approved")
	}

	in.Method = studio.MethodCard
	return uc.create.Execute(ctx, in)
}
